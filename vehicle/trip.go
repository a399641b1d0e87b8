package vehicle

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/langchou/uvogazer/pkg/units"
)

// TripPeriodType 行程统计周期
type TripPeriodType int

const (
	TripPeriodMonth TripPeriodType = iota
	TripPeriodDay
)

// TripInfo 单次行程信息
type TripInfo struct {
	// 行程开始时刻，格式 hhmmss（汇总数据不填）
	HHMMSS    string   `json:"hhmmss,omitempty"`
	DriveTime *int     `json:"drive_time,omitempty"` // 分钟
	IdleTime  *int     `json:"idle_time,omitempty"`  // 分钟
	Distance  *float64 `json:"distance,omitempty"`
	AvgSpeed  *float64 `json:"avg_speed,omitempty"`
	MaxSpeed  *int     `json:"max_speed,omitempty"`

	// 以下字段只在 API 响应中出现
	TripDayList     []TripDayListItem `json:"trip_day_list,omitempty"`
	TripPeriodType  *TripPeriodType   `json:"trip_period_type,omitempty"`
	MonthTripDayCnt *int              `json:"month_trip_day_cnt,omitempty"`
}

// TripDayListItem API 响应中的单日行程条目
type TripDayListItem struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// DayTripCounts 单日行程次数
type DayTripCounts struct {
	YYYYMMDD  string `json:"yyyymmdd,omitempty"`
	TripCount *int   `json:"trip_count,omitempty"`
}

// MonthTripInfo 月度行程信息
type MonthTripInfo struct {
	YYYYMM  string          `json:"yyyymm,omitempty"`
	Summary *TripInfo       `json:"summary,omitempty"`
	DayList []DayTripCounts `json:"day_list,omitempty"`
}

// DayTripInfo 单日行程信息
type DayTripInfo struct {
	YYYYMMDD string     `json:"yyyymmdd,omitempty"`
	Summary  *TripInfo  `json:"summary,omitempty"`
	TripList []TripInfo `json:"trip_list,omitempty"`
}

// DailyDrivingStats 每日驾驶统计（部分地区可用）
// 能耗字段单位均为 Wh
type DailyDrivingStats struct {
	Date                          time.Time `json:"date"`
	TotalConsumed                 *int      `json:"total_consumed,omitempty"`
	EngineConsumption             *int      `json:"engine_consumption,omitempty"`
	ClimateConsumption            *int      `json:"climate_consumption,omitempty"`
	OnboardElectronicsConsumption *int      `json:"onboard_electronics_consumption,omitempty"`
	BatteryCareConsumption        *int      `json:"battery_care_consumption,omitempty"`
	RegeneratedEnergy             *int      `json:"regenerated_energy,omitempty"`
	Distance                      *float64  `json:"distance,omitempty"`
	DistanceUnit                  string    `json:"distance_unit,omitempty"`
}

// SetDailyStats 设置每日驾驶统计
// 非空列表按日期降序排列后存储；未填距离单位的条目补默认单位（公里）
// 空列表或 nil 原样存储，不做排序
func (v *Vehicle) SetDailyStats(stats []DailyDrivingStats) {
	if len(stats) > 0 {
		v.logger.Debug("Sorting daily stats", zap.Int("count", len(stats)))
		sort.SliceStable(stats, func(i, j int) bool {
			return stats[i].Date.After(stats[j].Date)
		})
		for i := range stats {
			if stats[i].DistanceUnit == "" {
				stats[i].DistanceUnit = units.DistanceUnits[1]
			}
		}
	}
	v.dailyStats = stats
}

// DailyStats 返回每日驾驶统计，日期降序
func (v *Vehicle) DailyStats() []DailyDrivingStats {
	return v.dailyStats
}

// SetMonthTripInfo 设置月度行程信息
// 内部 DayList 非空时按 yyyymmdd 升序排列后存储
func (v *Vehicle) SetMonthTripInfo(info *MonthTripInfo) {
	if info != nil && len(info.DayList) > 0 {
		v.logger.Debug("Sorting month trip day list",
			zap.String("yyyymm", info.YYYYMM),
			zap.Int("days", len(info.DayList)))
		sort.SliceStable(info.DayList, func(i, j int) bool {
			return info.DayList[i].YYYYMMDD < info.DayList[j].YYYYMMDD
		})
	}
	v.monthTripInfo = info
}

// MonthTripInfo 返回月度行程信息
func (v *Vehicle) MonthTripInfo() *MonthTripInfo {
	return v.monthTripInfo
}

// SetDayTripInfo 设置单日行程信息
// 内部 TripList 非空时按 hhmmss 降序排列后存储
func (v *Vehicle) SetDayTripInfo(info *DayTripInfo) {
	if info != nil && len(info.TripList) > 0 {
		v.logger.Debug("Sorting day trip list",
			zap.String("yyyymmdd", info.YYYYMMDD),
			zap.Int("trips", len(info.TripList)))
		sort.SliceStable(info.TripList, func(i, j int) bool {
			return info.TripList[i].HHMMSS > info.TripList[j].HHMMSS
		})
	}
	v.dayTripInfo = info
}

// DayTripInfo 返回单日行程信息
func (v *Vehicle) DayTripInfo() *DayTripInfo {
	return v.dayTripInfo
}
