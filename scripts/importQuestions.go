package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/solankismit/exambuddy/config"
	"github.com/solankismit/exambuddy/database"
	"github.com/solankismit/exambuddy/models"
)

// Imports quiz questions from Questions.csv. Expected headers:
// quizId, text, optionA, optionB, optionC, optionD, correctAnswer,
// explanation, complexity, orderIndex
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Questions.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%1000 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		quizID := parseInt(getField(row, headerIndex, "quizId"))
		correctAnswer := strings.ToUpper(getField(row, headerIndex, "correctAnswer"))
		complexity := strings.ToUpper(getField(row, headerIndex, "complexity"))
		if complexity == "" {
			complexity = "MEDIUM"
		}

		question := models.Question{
			QuizID:        uint(quizID),
			Text:          getField(row, headerIndex, "text"),
			OptionA:       getField(row, headerIndex, "optionA"),
			OptionB:       getField(row, headerIndex, "optionB"),
			OptionC:       getField(row, headerIndex, "optionC"),
			OptionD:       getField(row, headerIndex, "optionD"),
			CorrectAnswer: correctAnswer,
			Explanation:   getField(row, headerIndex, "explanation"),
			Complexity:    complexity,
			IsActive:      true,
			OrderIndex:    parseInt(getField(row, headerIndex, "orderIndex")),
		}

		// Skip if essential fields are missing
		if quizID == 0 || question.Text == "" {
			skipped++
			continue
		}
		if correctAnswer != "A" && correctAnswer != "B" && correctAnswer != "C" && correctAnswer != "D" {
			log.Printf("Row %d has invalid correct answer %q, skipping", i+2, correctAnswer)
			skipped++
			continue
		}

		// The quiz must already exist
		if err := database.Database.Db.First(&models.Quiz{}, quizID).Error; err != nil {
			log.Printf("Row %d references missing quiz %d, skipping", i+2, quizID)
			skipped++
			continue
		}

		if err := database.Database.Db.Create(&question).Error; err != nil {
			log.Printf("Error inserting question for quiz %d: %v", quizID, err)
			continue
		}
		inserted++
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}
