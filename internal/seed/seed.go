// Package seed holds the static fixture datasets used to populate the
// store on first run or after a reset. Purely descriptive, never
// computed.
package seed

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/pkg/qr"
)

// Dataset groups every collection written at initialization time.
type Dataset struct {
	Stations         []domain.Station
	Umbrellas        []domain.Umbrella
	Users            []domain.User
	Transactions     []domain.Transaction
	Sponsors         []domain.Sponsor
	PartnerStores    []domain.PartnerStore
	SponsorshipDeals []domain.SponsorshipDeal
}

// Validate checks the dataset is well-formed before it is written:
// stations, umbrellas and users must be non-empty, the remaining
// collections only have to be present.
func (d Dataset) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Stations, validation.Required),
		validation.Field(&d.Umbrellas, validation.Required),
		validation.Field(&d.Users, validation.Required),
		validation.Field(&d.Transactions, validation.NotNil),
		validation.Field(&d.Sponsors, validation.NotNil),
		validation.Field(&d.PartnerStores, validation.NotNil),
		validation.Field(&d.SponsorshipDeals, validation.NotNil),
	)
}

// ReturnMessages are the cheers shown after a successful return.
var ReturnMessages = []string{
	"次の人のためにありがとう☂️",
	"素晴らしい！地域の輪を広げています🌟",
	"お疲れさまでした！ポイントが加算されました✨",
	"ご利用ありがとうございました🙏",
	"みんなで支える街づくり、感謝です💙",
	"傘シェアコミュニティの一員として感謝！🤝",
	"雨の日を支えてくれてありがとう🌧️",
	"返却完了！次回もよろしくお願いします😊",
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}

	return t
}

// Fixtures returns the demo dataset: three stations around Fukui
// University, thirteen umbrellas, three users, a few historical
// transactions and the sponsor/partner-store network.
func Fixtures() Dataset {
	return Dataset{
		Stations:         stations(),
		Umbrellas:        umbrellas(),
		Users:            users(),
		Transactions:     transactions(),
		Sponsors:         sponsors(),
		PartnerStores:    partnerStores(),
		SponsorshipDeals: sponsorshipDeals(),
	}
}

// Fallback returns the minimal single-record dataset used when the
// fixtures fail validation, so the app stays usable.
func Fallback() Dataset {
	now := time.Now()

	return Dataset{
		Stations: []domain.Station{
			{
				ID:             "station-fallback",
				Name:           "Emergency Station",
				NameJa:         "緊急ステーション",
				Location:       domain.GeoPoint{Lat: 36.0, Lng: 136.0},
				Address:        "Fukui University",
				AddressJa:      "福井大学内",
				Capacity:       5,
				CurrentCount:   1,
				Type:           domain.StationUniversity,
				OperatingHours: domain.OperatingHours{Open: "09:00", Close: "21:00"},
				IsActive:       true,
			},
		},
		Umbrellas: []domain.Umbrella{
			{
				ID:           "umb-fallback",
				Code:         qr.Payload("umb-fallback"),
				Status:       domain.UmbrellaAvailable,
				StationID:    "station-fallback",
				Condition:    domain.ConditionGood,
				BatteryLevel: 100,
				LastUpdated:  now,
			},
		},
		Users: []domain.User{
			{
				ID:          "user-fallback",
				Name:        "Guest User",
				NameJa:      "ゲストユーザー",
				Email:       "guest@example.com",
				Role:        domain.RoleStudent,
				IsActive:    true,
				CreatedAt:   now,
				LastLoginAt: now,
			},
		},
		Transactions:     []domain.Transaction{},
		Sponsors:         []domain.Sponsor{},
		PartnerStores:    []domain.PartnerStore{},
		SponsorshipDeals: []domain.SponsorshipDeal{},
	}
}

func stations() []domain.Station {
	return []domain.Station{
		{
			ID:             "station-1",
			Name:           "Fukui University Main Gate",
			NameJa:         "福井大学正門",
			Location:       domain.GeoPoint{Lat: 36.0668, Lng: 136.2189},
			Address:        "3-9-1 Bunkyo, Fukui City, Fukui",
			AddressJa:      "福井県福井市文京3-9-1",
			Capacity:       8,
			CurrentCount:   5,
			Type:           domain.StationUniversity,
			OperatingHours: domain.OperatingHours{Open: "06:00", Close: "22:00"},
			IsActive:       true,
			ContactInfo:    &domain.ContactInfo{Phone: "0776-27-8001"},
		},
		{
			ID:             "station-2",
			Name:           "Lawson Fukui University Store",
			NameJa:         "ローソン福井大学店",
			Location:       domain.GeoPoint{Lat: 36.0655, Lng: 136.2175},
			Address:        "2-8-15 Bunkyo, Fukui City, Fukui",
			AddressJa:      "福井県福井市文京2-8-15",
			Capacity:       6,
			CurrentCount:   3,
			Type:           domain.StationStore,
			OperatingHours: domain.OperatingHours{Open: "24:00", Close: "24:00"},
			IsActive:       true,
			ContactInfo:    &domain.ContactInfo{Phone: "0776-25-1234"},
		},
		{
			ID:             "station-3",
			Name:           "Fukui Station East Exit",
			NameJa:         "JR福井駅東口",
			Location:       domain.GeoPoint{Lat: 36.0616, Lng: 136.2237},
			Address:        "1-1-1 Chuo, Fukui City, Fukui",
			AddressJa:      "福井県福井市中央1-1-1",
			Capacity:       12,
			CurrentCount:   8,
			Type:           domain.StationPublic,
			OperatingHours: domain.OperatingHours{Open: "05:00", Close: "24:00"},
			IsActive:       true,
			ContactInfo:    &domain.ContactInfo{Phone: "0776-20-0541"},
		},
	}
}

func umbrella(id string, status domain.UmbrellaStatus, stationID, updated string, condition domain.UmbrellaCondition, battery int, borrowedBy string) domain.Umbrella {
	return domain.Umbrella{
		ID:           id,
		Code:         qr.Payload(id),
		Status:       status,
		StationID:    stationID,
		LastUpdated:  ts(updated),
		BorrowedBy:   borrowedBy,
		Condition:    condition,
		BatteryLevel: battery,
	}
}

func umbrellas() []domain.Umbrella {
	return []domain.Umbrella{
		// Station 1 - Main Gate
		umbrella("umb-001", domain.UmbrellaAvailable, "station-1", "2025-10-12T08:00:00Z", domain.ConditionGood, 95, ""),
		umbrella("umb-002", domain.UmbrellaAvailable, "station-1", "2025-10-12T08:00:00Z", domain.ConditionGood, 88, ""),
		umbrella("umb-003", domain.UmbrellaAvailable, "station-1", "2025-10-12T08:00:00Z", domain.ConditionFair, 72, ""),
		umbrella("umb-004", domain.UmbrellaAvailable, "station-1", "2025-10-12T08:00:00Z", domain.ConditionGood, 100, ""),
		umbrella("umb-005", domain.UmbrellaAvailable, "station-1", "2025-10-12T08:00:00Z", domain.ConditionGood, 91, ""),
		umbrella("umb-006", domain.UmbrellaInUse, "station-1", "2025-10-12T09:30:00Z", domain.ConditionGood, 85, "user-1"),
		// Station 2 - Lawson
		umbrella("umb-007", domain.UmbrellaAvailable, "station-2", "2025-10-12T08:00:00Z", domain.ConditionGood, 93, ""),
		umbrella("umb-008", domain.UmbrellaAvailable, "station-2", "2025-10-12T08:00:00Z", domain.ConditionFair, 67, ""),
		umbrella("umb-009", domain.UmbrellaAvailable, "station-2", "2025-10-12T08:00:00Z", domain.ConditionGood, 98, ""),
		umbrella("umb-010", domain.UmbrellaInUse, "station-2", "2025-10-12T10:15:00Z", domain.ConditionGood, 82, "user-2"),
		// Station 3 - East Exit
		umbrella("umb-011", domain.UmbrellaAvailable, "station-3", "2025-10-12T08:00:00Z", domain.ConditionGood, 89, ""),
		umbrella("umb-012", domain.UmbrellaAvailable, "station-3", "2025-10-12T08:00:00Z", domain.ConditionGood, 96, ""),
		umbrella("umb-013", domain.UmbrellaMaintenance, "station-3", "2025-10-11T16:30:00Z", domain.ConditionPoor, 45, ""),
	}
}

func users() []domain.User {
	return []domain.User{
		{
			ID:           "user-1",
			Name:         "Takeshi Yamada",
			NameJa:       "山田武志",
			Email:        "yamada@fukui-u.ac.jp",
			Role:         domain.RoleStudent,
			StudentID:    "FU2023001",
			Department:   "Engineering",
			Phone:        "090-1234-5678",
			TotalBorrows: 15,
			TotalReturns: 14,
			Points:       280,
			IsActive:     true,
			CreatedAt:    ts("2025-04-01T00:00:00Z"),
			LastLoginAt:  ts("2025-10-12T09:30:00Z"),
		},
		{
			ID:           "user-2",
			Name:         "Yuki Tanaka",
			NameJa:       "田中雪",
			Email:        "tanaka@fukui-u.ac.jp",
			Role:         domain.RoleStudent,
			StudentID:    "FU2024002",
			Department:   "Liberal Arts",
			Phone:        "090-2345-6789",
			TotalBorrows: 8,
			TotalReturns: 8,
			Points:       160,
			IsActive:     true,
			CreatedAt:    ts("2025-04-15T00:00:00Z"),
			LastLoginAt:  ts("2025-10-12T10:15:00Z"),
		},
		{
			ID:          "user-admin",
			Name:        "Kensuke Sato",
			NameJa:      "佐藤健介",
			Email:       "admin@fukui-u.ac.jp",
			Role:        domain.RoleAdmin,
			Department:  "Student Affairs",
			Phone:       "0776-27-8100",
			IsActive:    true,
			CreatedAt:   ts("2025-01-01T00:00:00Z"),
			LastLoginAt: ts("2025-10-12T08:00:00Z"),
		},
	}
}

func transactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:         "tx-001",
			UserID:     "user-1",
			UmbrellaID: "umb-006",
			StationID:  "station-1",
			Action:     domain.ActionBorrow,
			Timestamp:  ts("2025-10-12T09:30:00Z"),
			Location:   &domain.GeoPoint{Lat: 36.0668, Lng: 136.2189},
			Weather:    "rainy",
		},
		{
			ID:         "tx-002",
			UserID:     "user-2",
			UmbrellaID: "umb-010",
			StationID:  "station-2",
			Action:     domain.ActionBorrow,
			Timestamp:  ts("2025-10-12T10:15:00Z"),
			Location:   &domain.GeoPoint{Lat: 36.0655, Lng: 136.2175},
			Weather:    "cloudy",
		},
		{
			ID:           "tx-003",
			UserID:       "user-1",
			UmbrellaID:   "umb-002",
			StationID:    "station-1",
			Action:       domain.ActionReturn,
			Timestamp:    ts("2025-10-11T18:45:00Z"),
			Location:     &domain.GeoPoint{Lat: 36.0668, Lng: 136.2189},
			Weather:      "clear",
			PointsEarned: 20,
		},
	}
}

func sponsors() []domain.Sponsor {
	return []domain.Sponsor{
		{
			ID:           "sponsor-1",
			Name:         "福井コーヒー",
			NameEn:       "Fukui Coffee",
			LogoURL:      "/sponsors/fukui-coffee.svg",
			Message:      "美味しいコーヒーで、雨の日も心温まる時間を。",
			MessageEn:    "Warm your heart with delicious coffee, even on rainy days.",
			WebsiteURL:   "https://fukui-coffee.local",
			Active:       true,
			JoinedDate:   ts("2025-09-01T00:00:00Z"),
			ContactEmail: "info@fukui-coffee.local",
			Category:     domain.SponsorLocalBusiness,
		},
		{
			ID:         "sponsor-2",
			Name:       "さばえ書店",
			NameEn:     "Sabae Bookstore",
			LogoURL:    "/sponsors/sabae-books.svg",
			Message:    "知識と傘で、雨の日も晴れやかに。",
			MessageEn:  "Knowledge and umbrellas make rainy days brighter.",
			Active:     true,
			JoinedDate: ts("2025-09-15T00:00:00Z"),
			Category:   domain.SponsorLocalBusiness,
		},
		{
			ID:         "sponsor-3",
			Name:       "福井大学生協",
			NameEn:     "Fukui University Co-op",
			LogoURL:    "/sponsors/fukui-coop.svg",
			Message:    "学生生活をもっと便利に、もっと楽しく。",
			MessageEn:  "Making student life more convenient and enjoyable.",
			Active:     true,
			JoinedDate: ts("2025-08-01T00:00:00Z"),
			Category:   domain.SponsorUniversity,
		},
		{
			ID:           "sponsor-4",
			Name:         "カフェ未来",
			NameEn:       "Cafe Mirai",
			LogoURL:      "/sponsors/cafe-mirai.svg",
			Message:      "未来への一歩は、コーヒー一杯から。",
			MessageEn:    "The step towards the future starts with a cup of coffee.",
			Active:       true,
			JoinedDate:   ts("2025-10-01T00:00:00Z"),
			ContactEmail: "hello@cafe-mirai.local",
			Category:     domain.SponsorLocalBusiness,
		},
	}
}

func partnerStores() []domain.PartnerStore {
	return []domain.PartnerStore{
		{
			ID:                 "partner-1",
			Name:               "Fukui Coffee 文京店",
			NameEn:             "Fukui Coffee Bunkyo Branch",
			Type:               domain.PartnerCafe,
			Address:            "福井県福井市文京4-1-15",
			Lat:                36.0645,
			Lng:                136.2175,
			Phone:              "0776-25-1234",
			Hours:              "7:00-20:00",
			SponsorID:          "sponsor-1",
			Offers:             []string{"返却でコーヒー10円引き", "ポイント2倍キャンペーン"},
			AvailableUmbrellas: 3,
			MaxCapacity:        6,
			IsActive:           true,
			JoinedDate:         ts("2025-09-01T00:00:00Z"),
			LastUpdated:        ts("2025-10-12T09:00:00Z"),
			Features: []domain.PartnerFeature{
				domain.FeatureUmbrellaStation, domain.FeatureReturnBonus,
				domain.FeatureSponsorBenefits, domain.FeatureStudentDiscount,
			},
		},
		{
			ID:                 "partner-2",
			Name:               "さばえ書店 福井店",
			NameEn:             "Sabae Bookstore Fukui Branch",
			Type:               domain.PartnerBookstore,
			Address:            "福井県福井市中央2-8-21",
			Lat:                36.0625,
			Lng:                136.2145,
			Phone:              "0776-24-5678",
			Hours:              "9:00-21:00",
			SponsorID:          "sponsor-2",
			Offers:             []string{"返却で文具10%引き", "学習本ポイント3倍"},
			AvailableUmbrellas: 5,
			MaxCapacity:        8,
			IsActive:           true,
			JoinedDate:         ts("2025-09-15T00:00:00Z"),
			LastUpdated:        ts("2025-10-12T08:30:00Z"),
			Features: []domain.PartnerFeature{
				domain.FeatureUmbrellaStation, domain.FeatureReturnBonus,
				domain.FeatureSponsorBenefits, domain.FeatureStudentDiscount,
			},
		},
		{
			ID:                 "partner-3",
			Name:               "福井大学生協ストア",
			NameEn:             "Fukui University Co-op Store",
			Type:               domain.PartnerConvenience,
			Address:            "福井県福井市文京3-9-1 福井大学内",
			Lat:                36.0672,
			Lng:                136.2195,
			Phone:              "0776-27-8888",
			Hours:              "8:00-19:00",
			SponsorID:          "sponsor-3",
			Offers:             []string{"返却で弁当5%引き", "文房具ポイント2倍"},
			AvailableUmbrellas: 8,
			MaxCapacity:        12,
			IsActive:           true,
			JoinedDate:         ts("2025-08-20T00:00:00Z"),
			LastUpdated:        ts("2025-10-12T07:45:00Z"),
			Features: []domain.PartnerFeature{
				domain.FeatureUmbrellaStation, domain.FeatureReturnBonus,
				domain.FeatureSponsorBenefits, domain.FeatureStudentDiscount,
			},
		},
		{
			ID:                 "partner-4",
			Name:               "Cafe Mirai",
			NameEn:             "Cafe Mirai",
			Type:               domain.PartnerCafe,
			Address:            "福井県福井市順化1-14-7",
			Lat:                36.0598,
			Lng:                136.2165,
			Phone:              "0776-23-9999",
			Hours:              "8:00-22:00",
			SponsorID:          "sponsor-4",
			Offers:             []string{"返却でドリンク15円引き", "ケーキセット特価"},
			AvailableUmbrellas: 4,
			MaxCapacity:        6,
			IsActive:           true,
			JoinedDate:         ts("2025-10-01T00:00:00Z"),
			LastUpdated:        ts("2025-10-12T10:15:00Z"),
			Features: []domain.PartnerFeature{
				domain.FeatureUmbrellaStation, domain.FeatureReturnBonus,
				domain.FeatureSponsorBenefits,
			},
		},
		{
			ID:                 "partner-5",
			Name:               "コンビニ文京",
			NameEn:             "Convenience Bunkyo",
			Type:               domain.PartnerConvenience,
			Address:            "福井県福井市文京5-2-8",
			Lat:                36.0635,
			Lng:                136.2158,
			Phone:              "0776-26-7777",
			Hours:              "24時間営業",
			Offers:             []string{"返却でポイント+2", "飲料10円引き"},
			AvailableUmbrellas: 6,
			MaxCapacity:        10,
			IsActive:           true,
			JoinedDate:         ts("2025-09-20T00:00:00Z"),
			LastUpdated:        ts("2025-10-12T06:00:00Z"),
			Features: []domain.PartnerFeature{
				domain.FeatureUmbrellaStation, domain.FeatureReturnBonus,
			},
		},
	}
}

func sponsorshipDeals() []domain.SponsorshipDeal {
	return []domain.SponsorshipDeal{
		{
			ID:             "deal-1",
			SponsorID:      "sponsor-1",
			PartnerStoreID: "partner-1",
			DealType:       domain.DealPointsBonus,
			Description:    "Fukui Coffeeでの返却で追加ポイント",
			Value:          2,
			Active:         true,
			StartDate:      ts("2025-09-01T00:00:00Z"),
			EndDate:        ts("2025-12-31T23:59:59Z"),
		},
		{
			ID:             "deal-2",
			SponsorID:      "sponsor-2",
			PartnerStoreID: "partner-2",
			DealType:       domain.DealDiscount,
			Description:    "さばえ書店での文具割引",
			Value:          10,
			Active:         true,
			StartDate:      ts("2025-09-15T00:00:00Z"),
			EndDate:        ts("2025-11-30T23:59:59Z"),
		},
		{
			ID:             "deal-3",
			SponsorID:      "sponsor-3",
			PartnerStoreID: "partner-3",
			DealType:       domain.DealPointsBonus,
			Description:    "生協ストアでの返却で学生特典",
			Value:          3,
			Active:         true,
			StartDate:      ts("2025-08-20T00:00:00Z"),
		},
	}
}
