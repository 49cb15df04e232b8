package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/siddharthgadapkar-wq/ideal-memory/internal/models"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories"
	"github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories/filestore"
	mongorepo "github.com/siddharthgadapkar-wq/ideal-memory/internal/repositories/mongodb"
	"github.com/siddharthgadapkar-wq/ideal-memory/pkg/mongodb"
)

// Loads a snapshot JSON file (the format produced by the admin export
// endpoint) into the configured store, replacing existing collections.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	if len(os.Args) < 2 {
		log.Fatal("snapshot file path is required as a command line argument")
	}
	snapshotPath := os.Args[1]

	snapshot, err := readSnapshot(snapshotPath)
	if err != nil {
		log.Fatalf("Failed to read snapshot: %v", err)
	}

	var store repositories.AdminStore
	if mongoURI := os.Getenv("MONGODB_URI"); mongoURI != "" {
		client, err := mongodb.NewClient(mongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(context.Background())

		dbName := os.Getenv("MONGODB_DATABASE")
		if dbName == "" {
			dbName = "ideal-memory"
		}
		store = mongorepo.NewAdminStore(client.Database(dbName))
	} else {
		dataDir := os.Getenv("STORAGE_DATADIR")
		if dataDir == "" {
			dataDir = "data"
		}
		fileStore, err := filestore.NewStore(dataDir)
		if err != nil {
			log.Fatalf("Failed to open file store: %v", err)
		}
		defer fileStore.Close()
		store = fileStore
	}

	if err := store.Import(context.Background(), snapshot); err != nil {
		log.Fatalf("Failed to import snapshot: %v", err)
	}

	log.Printf("Imported %d events, %d contacts, %d testimonials",
		len(snapshot.Events), len(snapshot.Contacts), len(snapshot.Testimonials))
}

func readSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %v", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %v", err)
	}
	if snapshot.Events == nil && snapshot.Contacts == nil && snapshot.Testimonials == nil {
		return nil, fmt.Errorf("snapshot contains no collections")
	}
	return &snapshot, nil
}
