package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mkovacev/fitindex/internal/fitindex"
	"github.com/mkovacev/fitindex/internal/fitindex/history"
	"github.com/mkovacev/fitindex/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// indexcalc computes a performance index from a JSON file of workout
// records, for what-if scoring without touching any live store.
func main() {
	workoutsPath := flag.String("workouts", "", "path to a JSON file with workout records")
	age := flag.Int("age", 0, "subject age (optional)")
	weight := flag.Float64("weight", 0, "subject weight in kg (optional)")
	gender := flag.String("gender", "", "subject gender (optional)")
	flag.Parse()

	if *workoutsPath == "" {
		log.Fatalln("no workouts file given, use -workouts")
	}

	workoutsJson, err := os.ReadFile(*workoutsPath)
	if err != nil {
		log.Fatalf("read workouts file: %s", err)
	}

	var records []fitindex.Workout
	if err := json.Unmarshal(workoutsJson, &records); err != nil {
		log.Fatalf("unmarshal workouts: %s", err)
	}

	subject := fitindex.Subject{
		Age:      *age,
		WeightKg: *weight,
		Gender:   *gender,
	}

	engine := fitindex.NewEngine(nil, history.NewMemoryStore(), metrics.NewTestManager())
	snapshot := engine.Score(records, subject, nil)

	out, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Fatalf("marshal snapshot: %s", err)
	}

	fmt.Println(string(out))
}
