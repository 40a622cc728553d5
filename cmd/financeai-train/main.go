package main

import (
	"fmt"
	"os"

	"financeai/internal/cli"
	"financeai/internal/classifier"
)

// Trained models scoring below this on the held-out split are rejected.
const accuracyFloor = 0.90

var sanityChecks = []struct {
	text     string
	expected string
}{
	{"ride with uber", "Transport"},
	{"electric bill payment", "Bills"},
	{"bought jeans online", "Shopping"},
	{"movie night pvr", "Entertainment"},
	{"hospital checkup", "Other"},
	{"zomato biryani order", "Food"},
	{"petrol filling station", "Transport"},
	{"amazon delivery", "Shopping"},
	{"school fee", "Bills"},
	{"pub night out", "Entertainment"},
}

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Training expense category model", "path", cfg.ModelPath)

	pipeline, err := classifier.Train(classifier.TrainOptions{})
	if err != nil {
		logger.Error("Training failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Test accuracy: %.1f%%\n", pipeline.Accuracy*100)
	fmt.Println("Sanity-check predictions:")

	allOK := true
	for _, check := range sanityChecks {
		pred, err := pipeline.Predict(check.text)
		if err != nil {
			logger.Error("Sanity prediction failed", "text", check.text, "error", err)
			os.Exit(1)
		}
		mark := "ok  "
		if pred.Category != check.expected {
			mark = "FAIL"
			allOK = false
		}
		fmt.Printf("  %s  %-26s -> %-13s (expected %s, confidence %.1f%%)\n",
			mark, check.text, pred.Category, check.expected, pred.TopConfidence*100)
	}
	if allOK {
		fmt.Println("All sanity checks passed.")
	}

	if pipeline.Accuracy < accuracyFloor {
		logger.Error("Model accuracy below floor, artifact not written",
			"accuracy", pipeline.Accuracy, "floor", accuracyFloor)
		os.Exit(1)
	}

	if err := classifier.SaveArtifact(cfg.ModelPath, pipeline); err != nil {
		logger.Error("Failed to save model", "error", err)
		os.Exit(1)
	}
	logger.Info("Model saved", "path", cfg.ModelPath, "model_id", pipeline.ID)
}
