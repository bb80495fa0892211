package utils

import (
	"elearn/database"
	courseModels "elearn/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeLiveClassScheduler sets up the live class status sweeper
func InitializeLiveClassScheduler() {
	log.Println("[LIVECLASS-SCHEDULER] Initializing live class scheduler...")

	c := cron.New()

	// Run every minute so status flips close to the scheduled times
	c.AddFunc("* * * * *", func() {
		SweepLiveClassStatuses()
	})

	c.Start()
	log.Println("[LIVECLASS-SCHEDULER] Live class scheduler started - runs every minute")
}

// SweepLiveClassStatuses moves scheduled classes to live once their start
// time passes, and live classes to ended once their duration elapses.
// Cancelled classes are never touched.
func SweepLiveClassStatuses() {
	db := database.Database.Db
	now := time.Now()

	// scheduled -> live
	var starting []courseModels.LiveClass
	if err := db.
		Where("status = ? AND is_deleted = ? AND start_time <= ?", courseModels.LiveClassScheduled, false, now).
		Find(&starting).Error; err != nil {
		log.Printf("[LIVECLASS-SCHEDULER] Error fetching starting classes: %v", err)
		return
	}

	for _, lc := range starting {
		lc.Status = courseModels.LiveClassLive
		if err := db.Save(&lc).Error; err != nil {
			log.Printf("[LIVECLASS-SCHEDULER] Error marking class %d live: %v", lc.ID, err)
		}
	}

	// live -> ended
	var running []courseModels.LiveClass
	if err := db.
		Where("status = ? AND is_deleted = ?", courseModels.LiveClassLive, false).
		Find(&running).Error; err != nil {
		log.Printf("[LIVECLASS-SCHEDULER] Error fetching running classes: %v", err)
		return
	}

	for _, lc := range running {
		endsAt := lc.StartTime.Add(time.Duration(lc.DurationMinutes) * time.Minute)
		if now.After(endsAt) {
			lc.Status = courseModels.LiveClassEnded
			if err := db.Save(&lc).Error; err != nil {
				log.Printf("[LIVECLASS-SCHEDULER] Error marking class %d ended: %v", lc.ID, err)
			}
		}
	}
}
