package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository"
)

// jst renders exported timestamps in the service's home timezone.
var jst = time.FixedZone("JST", 9*60*60)

// AnalyticsService computes pure read-side aggregations over the
// transaction, station and umbrella collections. Nothing here mutates
// state.
type AnalyticsService struct {
	repo *repository.LocalDB
}

func NewAnalyticsService(repo *repository.LocalDB) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func returnRate(borrows, returns int) float64 {
	if borrows == 0 {
		return 0
	}

	return round2(float64(returns) / float64(borrows) * 100)
}

// TransactionStats aggregates totals, a trailing 7-day daily series
// (calendar dates ending today, UTC) and per-station counts sorted by
// volume.
func (s *AnalyticsService) TransactionStats(ctx context.Context) domain.TransactionStats {
	transactions := s.repo.Transactions(ctx)
	stations := s.repo.Stations(ctx)

	var borrowCount, returnCount int
	for _, tx := range transactions {
		if tx.Action == domain.ActionBorrow {
			borrowCount++
		} else {
			returnCount++
		}
	}

	today := time.Now().UTC()
	daily := make([]domain.DailyStat, 0, 7)
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")

		stat := domain.DailyStat{Date: date}
		for _, tx := range transactions {
			if tx.Timestamp.UTC().Format("2006-01-02") != date {
				continue
			}
			stat.Count++
			if tx.Action == domain.ActionBorrow {
				stat.Borrows++
			} else {
				stat.Returns++
			}
		}

		daily = append(daily, stat)
	}

	byStation := make([]domain.StationStat, 0, len(stations))
	for _, station := range stations {
		stat := domain.StationStat{StationID: station.ID, StationName: station.NameJa}
		for _, tx := range transactions {
			if tx.StationID != station.ID {
				continue
			}
			if tx.Action == domain.ActionBorrow {
				stat.Borrows++
			} else {
				stat.Returns++
			}
		}
		stat.Total = stat.Borrows + stat.Returns

		byStation = append(byStation, stat)
	}
	sort.SliceStable(byStation, func(i, j int) bool {
		return byStation[i].Total > byStation[j].Total
	})

	return domain.TransactionStats{
		Total:       len(transactions),
		BorrowCount: borrowCount,
		ReturnCount: returnCount,
		ReturnRate:  returnRate(borrowCount, returnCount),
		Daily:       daily,
		ByStation:   byStation,
	}
}

func (s *AnalyticsService) UmbrellaStatusDistribution(ctx context.Context) domain.StatusDistribution {
	var dist domain.StatusDistribution
	for _, u := range s.repo.Umbrellas(ctx) {
		switch u.Status {
		case domain.UmbrellaAvailable:
			dist.Available++
		case domain.UmbrellaInUse:
			dist.InUse++
		case domain.UmbrellaMaintenance:
			dist.Maintenance++
		case domain.UmbrellaLost:
			dist.Lost++
		}
	}

	return dist
}

// StationUtilization scales transactions per stationed umbrella by 10
// for chart display, as the dashboard expects.
func (s *AnalyticsService) StationUtilization(ctx context.Context) []domain.StationUtilization {
	umbrellas := s.repo.Umbrellas(ctx)
	transactions := s.repo.Transactions(ctx)

	stations := s.repo.Stations(ctx)
	utilization := make([]domain.StationUtilization, 0, len(stations))
	for _, station := range stations {
		var umbrellaCount, txCount int
		for _, u := range umbrellas {
			if u.StationID == station.ID {
				umbrellaCount++
			}
		}
		for _, tx := range transactions {
			if tx.StationID == station.ID {
				txCount++
			}
		}

		var rate float64
		if umbrellaCount > 0 {
			rate = round2(float64(txCount) / float64(umbrellaCount) * 10)
		}

		utilization = append(utilization, domain.StationUtilization{
			StationID:         station.ID,
			StationName:       station.NameJa,
			TotalUmbrellas:    umbrellaCount,
			UtilizationRate:   rate,
			TotalTransactions: txCount,
		})
	}

	return utilization
}

// AdminSummary condenses the dashboard header: fleet size, stations
// with traffic, top-3 stations and the status distribution with
// integer percentages.
func (s *AnalyticsService) AdminSummary(ctx context.Context) domain.AdminSummary {
	umbrellas := s.repo.Umbrellas(ctx)
	stations := s.repo.Stations(ctx)
	transactions := s.repo.Transactions(ctx)

	var borrowCount, returnCount int
	perStation := make(map[string]int)
	for _, tx := range transactions {
		if tx.Action == domain.ActionBorrow {
			borrowCount++
		} else {
			returnCount++
		}
		perStation[tx.StationID]++
	}

	topStations := make([]domain.TopStation, 0, len(perStation))
	for stationID, count := range perStation {
		name := "Unknown"
		for _, station := range stations {
			if station.ID == stationID {
				name = station.NameJa
				break
			}
		}

		topStations = append(topStations, domain.TopStation{Name: name, Transactions: count})
	}
	sort.SliceStable(topStations, func(i, j int) bool {
		return topStations[i].Transactions > topStations[j].Transactions
	})
	if len(topStations) > 3 {
		topStations = topStations[:3]
	}

	dist := s.UmbrellaStatusDistribution(ctx)
	percentage := func(count int) int {
		if len(umbrellas) == 0 {
			return 0
		}

		return int(math.Round(float64(count) / float64(len(umbrellas)) * 100))
	}

	umbrellasByStatus := []domain.StatusCount{
		{Status: string(domain.UmbrellaAvailable), Count: dist.Available, Percentage: percentage(dist.Available)},
		{Status: string(domain.UmbrellaInUse), Count: dist.InUse, Percentage: percentage(dist.InUse)},
		{Status: string(domain.UmbrellaMaintenance), Count: dist.Maintenance, Percentage: percentage(dist.Maintenance)},
		{Status: string(domain.UmbrellaLost), Count: dist.Lost, Percentage: percentage(dist.Lost)},
	}

	return domain.AdminSummary{
		TotalUmbrellas:    len(umbrellas),
		ActiveStations:    len(perStation),
		TotalTransactions: len(transactions),
		ReturnRate:        returnRate(borrowCount, returnCount),
		TopStations:       topStations,
		UmbrellasByStatus: umbrellasByStatus,
	}
}

// csvQuote double-quotes a field unconditionally, per the export
// contract, doubling embedded quotes.
func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// ExportTransactionsCSV serializes every transaction in storage order
// with resolved station and user display names. All ten fields are
// quoted.
func (s *AnalyticsService) ExportTransactionsCSV(ctx context.Context) string {
	transactions := s.repo.Transactions(ctx)

	stationNames := make(map[string]string)
	for _, station := range s.repo.Stations(ctx) {
		stationNames[station.ID] = station.NameJa
	}
	userNames := make(map[string]string)
	for _, user := range s.repo.Users(ctx) {
		userNames[user.ID] = user.NameJa
	}

	header := []string{
		"transaction_id", "umbrella_id", "action", "user_id", "user_name",
		"station_id", "station_name", "points_earned", "timestamp", "date_formatted",
	}

	var b strings.Builder
	writeRow := func(fields []string) {
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvQuote(field))
		}
		b.WriteByte('\n')
	}

	writeRow(header)
	for _, tx := range transactions {
		stationName, ok := stationNames[tx.StationID]
		if !ok {
			stationName = "Unknown Station"
		}
		userName, ok := userNames[tx.UserID]
		if !ok {
			userName = "Unknown User"
		}

		writeRow([]string{
			tx.ID,
			tx.UmbrellaID,
			string(tx.Action),
			tx.UserID,
			userName,
			tx.StationID,
			stationName,
			strconv.Itoa(tx.PointsEarned),
			tx.Timestamp.UTC().Format(time.RFC3339),
			tx.Timestamp.In(jst).Format("2006/01/02 15:04:05"),
		})
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// ExportFilename names the CSV download for today.
func (s *AnalyticsService) ExportFilename() string {
	return fmt.Sprintf("machikasa_transactions_%s.csv", time.Now().UTC().Format("2006-01-02"))
}
