package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/JustinFoxy/ToDoList/internal/database"
	"github.com/JustinFoxy/ToDoList/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	db := database.InitDB()
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Fatal: Failed to migrate database schema: %v", err)
	}

	r := routes.SetupRouter(db)

	log.Println("Server listening on port 8080...")
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
