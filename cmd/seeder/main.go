//cmd/seeder/main.go
package main

import (
    "encoding/json"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strings"

    "github.com/google/uuid"
    "github.com/joho/godotenv"

    "github.com/unclebandit/campaign-agent-backend/internal/db"
    "github.com/unclebandit/campaign-agent-backend/internal/model"
    "github.com/unclebandit/campaign-agent-backend/internal/repository"
)

func main() {
    if err := godotenv.Load(); err != nil {
        log.Println("⚠️ No .env file found, relying on OS environment variables")
    }

    db.Init()
    defer db.DB.Close()

    // Schema first
    schema, err := os.ReadFile("seed/schema.sql")
    if err != nil {
        log.Fatalf("failed to read seed/schema.sql: %v", err)
    }
    if _, err := db.DB.Exec(string(schema)); err != nil {
        log.Fatalf("failed to execute seed/schema.sql: %v", err)
    }
    fmt.Println("Seeded: seed/schema.sql")

    // Company profile fixtures
    profileRepo := &repository.ProfileRepository{DB: db.DB}

    files, err := filepath.Glob("seed/companies/*.json")
    if err != nil {
        log.Fatal(err)
    }

    seeded := 0
    for _, file := range files {
        content, err := os.ReadFile(file)
        if err != nil {
            log.Fatalf("failed to read %s: %v", file, err)
        }

        var profile model.CompanyProfile
        if err := json.Unmarshal(content, &profile); err != nil {
            log.Fatalf("failed to parse %s: %v", file, err)
        }
        profile.CompanyName = strings.ToLower(profile.CompanyName)

        exists, err := profileRepo.Exists(profile.CompanyName)
        if err != nil {
            log.Fatalf("failed to check %s: %v", profile.CompanyName, err)
        }
        if exists {
            fmt.Printf("Company %q already exists, skipping...\n", profile.CompanyName)
            continue
        }

        if profile.ID == "" {
            profile.ID = uuid.NewString()
        }
        if err := profileRepo.Create(&profile); err != nil {
            log.Fatalf("failed to seed %s: %v", profile.CompanyName, err)
        }
        fmt.Printf("Added company: %s\n", profile.CompanyName)
        seeded++
    }

    fmt.Printf("Database seeding completed successfully! (%d companies)\n", seeded)
}
