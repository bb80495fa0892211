package main

import (
	"elearn/config"
	"elearn/database"
	courseModels "elearn/models/course"
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("CourseCatalog.csv")
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
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%100 == 0 {
			log.Printf("Processing row %d...", i+1)
		}

		// Parse fields from CSV
		course := courseModels.Course{
			CourseName:    getField(row, headerIndex, "courseName"),
			CourseInitial: getField(row, headerIndex, "courseInitial"),
			Credit:        parseFloat(getField(row, headerIndex, "credit")),
			Department:    getField(row, headerIndex, "department"),
			InstructorID:  uint(parseInt(getField(row, headerIndex, "instructorId"))),
			Prerequisites: getField(row, headerIndex, "prerequisites"),
			Description:   getField(row, headerIndex, "description"),
			Schedule:      getField(row, headerIndex, "schedule"),
			Price:         parseFloat(getField(row, headerIndex, "price")),
			Advanced:      parseBool(getField(row, headerIndex, "advanced")),
			IsDeleted:     false,
		}

		// Skip if no name or instructor
		if course.CourseName == "" || course.InstructorID == 0 {
			skipped++
			continue
		}

		// Check if course exists by initial and instructor
		var existing courseModels.Course
		result := database.Database.Db.
			Where("course_initial = ? AND instructor_id = ?", course.CourseInitial, course.InstructorID).
			First(&existing)

		if result.Error != nil {
			// Insert new course
			if err := database.Database.Db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %s (%s): %v", course.CourseName, course.CourseInitial, err)
				continue
			}
			inserted++
		} else {
			// Update existing course
			existing.CourseName = course.CourseName
			existing.Credit = course.Credit
			existing.Department = course.Department
			existing.Prerequisites = course.Prerequisites
			existing.Description = course.Description
			existing.Schedule = course.Schedule
			existing.Price = course.Price
			existing.Advanced = course.Advanced

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %s (%s): %v", course.CourseName, course.CourseInitial, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
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

// parseFloat converts string to float64
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

// parseBool converts yes/true/1 to true
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true
	}
	return false
}
