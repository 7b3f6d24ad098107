package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/vocabtrack/internal/database"
	"github.com/example/vocabtrack/internal/history"
	"github.com/example/vocabtrack/internal/importer"
	"github.com/example/vocabtrack/internal/review"
	"github.com/example/vocabtrack/internal/scheduler"
	"github.com/example/vocabtrack/internal/storage"
	"github.com/example/vocabtrack/internal/vocabulary"
)

// logNotifier reports due reminders on the process log.
type logNotifier struct{}

func (logNotifier) SendDueReminder(count int) error {
	log.Printf("You have %d word(s) due for review", count)
	return nil
}

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	store, _, _, err := buildStores()
	if err != nil {
		log.Fatalf("Failed to set up storage: %v", err)
	}
	defer database.Close()

	// One-shot bulk import before the daemon starts
	if file := os.Getenv("IMPORT_FILE"); file != "" {
		config := importer.DefaultImportConfig()
		config.FilePath = file
		result, err := importer.ImportWords(store, config, time.Now())
		if err != nil {
			log.Fatalf("Failed to import %s: %v", file, err)
		}
		log.Printf("Imported %s: %d created, %d updated, %d skipped, %d errors",
			file, result.Created, result.Updated, result.Skipped, len(result.Errors))
	}

	sched := scheduler.New(store, review.New(), logNotifier{})
	sched.Start()
	defer sched.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("vocabtrack started. Press Ctrl+C to stop.")
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}

// buildStores wires the word store and the two ledgers to the backend
// selected by VOCABTRACK_STORAGE: "json" for original-format files under
// the data directory, anything else for the database.
func buildStores() (*vocabulary.Store, *history.ResultLedger, *history.CheckinLedger, error) {
	if os.Getenv("VOCABTRACK_STORAGE") == "json" {
		dataDir := os.Getenv("VOCABTRACK_DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return nil, nil, nil, err
		}
		store := vocabulary.NewStore(storage.NewWordFile(filepath.Join(dataDir, "words.json")))
		results := history.NewResultLedger(storage.NewQuizResultFile(filepath.Join(dataDir, "quiz_result.json")))
		checkins := history.NewCheckinLedger(storage.NewCheckinFile(filepath.Join(dataDir, "checkin.json")))
		return store, results, checkins, nil
	}

	if err := database.Connect(); err != nil {
		return nil, nil, nil, err
	}
	store := vocabulary.NewStore(database.NewWordRepository())
	results := history.NewResultLedger(database.NewQuizResultRepository())
	checkins := history.NewCheckinLedger(database.NewCheckinRepository())
	return store, results, checkins, nil
}
