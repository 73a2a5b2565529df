package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"roomagent/config"
	"roomagent/db"
	"roomagent/handlers"
	"roomagent/middleware"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize MongoDB connection
	err = db.InitMongoDB()
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer db.Close()

	db.EnsureParticipantIndexes()
	db.EnsureMemoryIndexes()

	// Set up HTTP handlers
	http.HandleFunc("/spawn", middleware.EnableCORS(handlers.SpawnAgentHandler))
	http.HandleFunc("/rooms", middleware.EnableCORS(handlers.CreateRoomHandler))
	http.HandleFunc("/muteroom/evaluate", middleware.EnableCORS(handlers.MuteEvaluationHandler))
	http.HandleFunc("/muteroom/eligible", middleware.EnableCORS(handlers.MuteEligibilityHandler))

	port := config.GetPort()
	fmt.Println("Server running on http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
