package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/utilityhub/UtilityHub/app/models"
	"github.com/utilityhub/UtilityHub/internal/pkg/cache"
	"github.com/utilityhub/UtilityHub/internal/pkg/database"
)

const (
	CacheKeyBillsTotal     = "statistics:bills:total"
	CacheKeyBillsPending   = "statistics:bills:pending"
	CacheKeyRevenueDaily   = "statistics:revenue:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyComplaintsOpen = "statistics:complaints:open"
	CacheKeySubscribers    = "statistics:subscribers:total"
	CacheExpiration        = 30 * time.Minute
)

// StatisticsData holds the dashboard counters
type StatisticsData struct {
	TotalBills       int
	PendingBills     int
	TodayRevenue     float64
	OpenComplaints   int
	TotalSubscribers int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache reports whether the refresh interval has elapsed
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counters when they are stale
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recomputes all dashboard counters and stores them
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalBills int64
	if err := db.Model(&models.Bill{}).Count(&totalBills).Error; err != nil {
		log.Printf("Error counting bills: %v", err)
		return err
	}

	var pendingBills int64
	if err := db.Model(&models.Bill{}).
		Where("LOWER(status) = LOWER(?)", models.BillStatusPending).
		Count(&pendingBills).Error; err != nil {
		log.Printf("Error counting pending bills: %v", err)
		return err
	}

	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	todayEnd := todayStart.Add(24 * time.Hour)
	var todayRevenue float64
	if err := db.Model(&models.Payment{}).
		Where("LOWER(status) = LOWER(?) AND date BETWEEN ? AND ?",
			models.PaymentStatusCompleted, todayStart, todayEnd).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&todayRevenue); err != nil {
		log.Printf("Error summing today's revenue: %v", err)
		return err
	}

	var openComplaints int64
	if err := db.Model(&models.Complaint{}).
		Where("LOWER(status) = LOWER(?)", models.ComplaintStatusOpen).
		Count(&openComplaints).Error; err != nil {
		log.Printf("Error counting open complaints: %v", err)
		return err
	}

	var subscribers int64
	if err := db.Model(&models.User{}).
		Where("LOWER(role) = LOWER(?)", models.RoleSubscriber).
		Count(&subscribers).Error; err != nil {
		log.Printf("Error counting subscribers: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyBillsTotal, strconv.FormatInt(totalBills, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyBillsPending, strconv.FormatInt(pendingBills, 10), CacheExpiration); err != nil {
		return err
	}
	dailyKey := fmt.Sprintf(CacheKeyRevenueDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatFloat(todayRevenue, 'f', 2, 64), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyComplaintsOpen, strconv.FormatInt(openComplaints, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeySubscribers, strconv.FormatInt(subscribers, 10), CacheExpiration); err != nil {
		return err
	}

	log.Printf("Statistics cached: bills=%d pending=%d revenue_today=%.2f open_complaints=%d subscribers=%d",
		totalBills, pendingBills, todayRevenue, openComplaints, subscribers)

	return nil
}

// GetStatistics serves the dashboard counters from the cache, refreshing
// it first when stale.
func GetStatistics() StatisticsData {
	UpdateCacheIfNeeded()

	data := StatisticsData{}

	if v, err := cache.GetInt(CacheKeyBillsTotal); err == nil {
		data.TotalBills = v
	}
	if v, err := cache.GetInt(CacheKeyBillsPending); err == nil {
		data.PendingBills = v
	}
	today := time.Now().Format("2006-01-02")
	if v, err := cache.Get(fmt.Sprintf(CacheKeyRevenueDaily, today)); err == nil {
		if f, convErr := strconv.ParseFloat(v, 64); convErr == nil {
			data.TodayRevenue = f
		}
	}
	if v, err := cache.GetInt(CacheKeyComplaintsOpen); err == nil {
		data.OpenComplaints = v
	}
	if v, err := cache.GetInt(CacheKeySubscribers); err == nil {
		data.TotalSubscribers = v
	}

	return data
}
