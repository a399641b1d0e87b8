package vehicle

import (
	"time"

	"go.uber.org/zap"

	"github.com/langchou/uvogazer/pkg/convert"
)

// Vehicle 车辆记录
// 外部 API 客户端在每次轮询后就地更新该记录，下游集成层（如家庭自动化）只读取。
// 本身不做任何同步；多线程宿主需要在整个"刷新-读取"周期内对单个实例加外部锁。
//
// 普通字段直接导出读写；带归一化逻辑的字段（值+单位对、时间戳修正、
// 排序集合）通过具名 Set/Get 方法访问，内部保存私有备份字段。
// 指针类型字段为 nil 统一表示"不可用"。
type Vehicle struct {
	// 基础信息
	ID               string `json:"id,omitempty"`
	Name             string `json:"name,omitempty"`
	Model            string `json:"model,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`
	Year             *int   `json:"year,omitempty"`
	VIN              string `json:"vin,omitempty"`
	Key              string `json:"key,omitempty"`
	// 欧版 / Type 1 车型
	CcuCCS2ProtocolSupport *int `json:"ccu_ccs2_protocol_support,omitempty"`
	// 现代北美车型
	Generation *int `json:"generation,omitempty"`
	// 不属于 API 字段，供上层决定是否轮询该车辆
	Enabled bool `json:"enabled"`

	// 通用状态 (EV/PHEV/HEV/IC)
	CarBatteryPercentage *int  `json:"car_battery_percentage,omitempty"`
	EngineIsRunning      *bool `json:"engine_is_running,omitempty"`

	Timezone *time.Location `json:"-"`

	DtcCount        *int           `json:"dtc_count,omitempty"`
	DtcDescriptions map[string]any `json:"dtc_descriptions,omitempty"`

	SmartKeyBatteryWarningIsOn *bool `json:"smart_key_battery_warning_is_on,omitempty"`
	WasherFluidWarningIsOn     *bool `json:"washer_fluid_warning_is_on,omitempty"`
	BrakeFluidWarningIsOn      *bool `json:"brake_fluid_warning_is_on,omitempty"`

	// 空调
	AirControlIsOn          *bool  `json:"air_control_is_on,omitempty"`
	DefrostIsOn             *bool  `json:"defrost_is_on,omitempty"`
	SteeringWheelHeaterIsOn *bool  `json:"steering_wheel_heater_is_on,omitempty"`
	BackWindowHeaterIsOn    *bool  `json:"back_window_heater_is_on,omitempty"`
	SideMirrorHeaterIsOn    *bool  `json:"side_mirror_heater_is_on,omitempty"`
	FrontLeftSeatStatus     string `json:"front_left_seat_status,omitempty"`
	FrontRightSeatStatus    string `json:"front_right_seat_status,omitempty"`
	RearLeftSeatStatus      string `json:"rear_left_seat_status,omitempty"`
	RearRightSeatStatus     string `json:"rear_right_seat_status,omitempty"`

	// 车门
	IsLocked               *bool `json:"is_locked,omitempty"`
	FrontLeftDoorIsLocked  *bool `json:"front_left_door_is_locked,omitempty"`
	FrontRightDoorIsLocked *bool `json:"front_right_door_is_locked,omitempty"`
	BackLeftDoorIsLocked   *bool `json:"back_left_door_is_locked,omitempty"`
	BackRightDoorIsLocked  *bool `json:"back_right_door_is_locked,omitempty"`
	FrontLeftDoorIsOpen    *bool `json:"front_left_door_is_open,omitempty"`
	FrontRightDoorIsOpen   *bool `json:"front_right_door_is_open,omitempty"`
	BackLeftDoorIsOpen     *bool `json:"back_left_door_is_open,omitempty"`
	BackRightDoorIsOpen    *bool `json:"back_right_door_is_open,omitempty"`
	TrunkIsOpen            *bool `json:"trunk_is_open,omitempty"`
	HoodIsOpen             *bool `json:"hood_is_open,omitempty"`

	// 车窗
	FrontLeftWindowIsOpen  *bool `json:"front_left_window_is_open,omitempty"`
	FrontRightWindowIsOpen *bool `json:"front_right_window_is_open,omitempty"`
	BackLeftWindowIsOpen   *bool `json:"back_left_window_is_open,omitempty"`
	BackRightWindowIsOpen  *bool `json:"back_right_window_is_open,omitempty"`
	SunroofIsOpen          *bool `json:"sunroof_is_open,omitempty"`

	// 胎压告警
	TirePressureAllWarningIsOn        *bool `json:"tire_pressure_all_warning_is_on,omitempty"`
	TirePressureFrontLeftWarningIsOn  *bool `json:"tire_pressure_front_left_warning_is_on,omitempty"`
	TirePressureFrontRightWarningIsOn *bool `json:"tire_pressure_front_right_warning_is_on,omitempty"`
	TirePressureRearLeftWarningIsOn   *bool `json:"tire_pressure_rear_left_warning_is_on,omitempty"`
	TirePressureRearRightWarningIsOn  *bool `json:"tire_pressure_rear_right_warning_is_on,omitempty"`

	// EV 字段 (EV/PHEV)
	EVChargePortDoorIsOpen *bool    `json:"ev_charge_port_door_is_open,omitempty"`
	EVChargingPower        *float64 `json:"ev_charging_power,omitempty"` // kW
	EVChargeLimitsDC       *int     `json:"ev_charge_limits_dc,omitempty"`
	EVChargeLimitsAC       *int     `json:"ev_charge_limits_ac,omitempty"`
	// 欧版专有：交流充电电流上限
	EVChargingCurrent   *int `json:"ev_charging_current,omitempty"`
	EVV2LDischargeLimit *int `json:"ev_v2l_discharge_limit,omitempty"`

	// 自绑定账号以来累计的耗电/回收电量，单位 Wh（欧版专有）
	TotalPowerConsumed    *float64 `json:"total_power_consumed,omitempty"`
	TotalPowerRegenerated *float64 `json:"total_power_regenerated,omitempty"`
	// 近 30 天耗电量，单位 Wh（欧版专有）
	PowerConsumption30d *float64 `json:"power_consumption_30d,omitempty"`

	EVBatteryPercentage    *int  `json:"ev_battery_percentage,omitempty"`
	EVBatterySOHPercentage *int  `json:"ev_battery_soh_percentage,omitempty"`
	EVBatteryRemain        *int  `json:"ev_battery_remain,omitempty"`
	EVBatteryCapacity      *int  `json:"ev_battery_capacity,omitempty"`
	EVBatteryIsCharging    *bool `json:"ev_battery_is_charging,omitempty"`
	EVBatteryIsPluggedIn   *bool `json:"ev_battery_is_plugged_in,omitempty"`

	// 出发预约
	EVFirstDepartureEnabled         *bool      `json:"ev_first_departure_enabled,omitempty"`
	EVSecondDepartureEnabled        *bool      `json:"ev_second_departure_enabled,omitempty"`
	EVFirstDepartureDays            []int      `json:"ev_first_departure_days,omitempty"`
	EVSecondDepartureDays           []int      `json:"ev_second_departure_days,omitempty"`
	EVFirstDepartureTime            *time.Time `json:"ev_first_departure_time,omitempty"`
	EVSecondDepartureTime           *time.Time `json:"ev_second_departure_time,omitempty"`
	EVFirstDepartureClimateEnabled  *bool      `json:"ev_first_departure_climate_enabled,omitempty"`
	EVSecondDepartureClimateEnabled *bool      `json:"ev_second_departure_climate_enabled,omitempty"`
	EVFirstDepartureClimateDefrost  *bool      `json:"ev_first_departure_climate_defrost,omitempty"`
	EVSecondDepartureClimateDefrost *bool      `json:"ev_second_departure_climate_defrost,omitempty"`

	EVOffPeakStartTime         *time.Time `json:"ev_off_peak_start_time,omitempty"`
	EVOffPeakEndTime           *time.Time `json:"ev_off_peak_end_time,omitempty"`
	EVOffPeakChargeOnlyEnabled *bool      `json:"ev_off_peak_charge_only_enabled,omitempty"`

	EVScheduleChargeEnabled *bool `json:"ev_schedule_charge_enabled,omitempty"`

	// 燃油车字段 (PHEV/HEV/IC)
	FuelLevel      *float64 `json:"fuel_level,omitempty"`
	FuelLevelIsLow *bool    `json:"fuel_level_is_low,omitempty"`

	// 计算字段
	EngineType string `json:"engine_type,omitempty"`

	// 调试字段：原始响应
	Data map[string]any `json:"data,omitempty"`

	// 值+单位对的私有备份字段，见 measurement.go
	totalDrivingRange        *float64
	totalDrivingRangeRaw     *float64
	totalDrivingRangeUnit    string
	odometer                 *float64
	odometerRaw              *float64
	odometerUnit             string
	airTemperature           *float64
	airTemperatureRaw        any
	airTemperatureUnit       string
	nextServiceDistance      *float64
	nextServiceDistanceRaw   *float64
	nextServiceDistanceUnit  string
	lastServiceDistance      *float64
	lastServiceDistanceRaw   *float64
	lastServiceDistanceUnit  string
	evDrivingRange           *float64
	evDrivingRangeRaw        *float64
	evDrivingRangeUnit       string
	fuelDrivingRange         *float64
	fuelDrivingRangeRaw      *float64
	fuelDrivingRangeUnit     string

	evEstimatedCurrentChargeDuration      *int
	evEstimatedCurrentChargeDurationRaw   *int
	evEstimatedCurrentChargeDurationUnit  string
	evEstimatedFastChargeDuration         *int
	evEstimatedFastChargeDurationRaw      *int
	evEstimatedFastChargeDurationUnit     string
	evEstimatedPortableChargeDuration     *int
	evEstimatedPortableChargeDurationRaw  *int
	evEstimatedPortableChargeDurationUnit string
	evEstimatedStationChargeDuration      *int
	evEstimatedStationChargeDurationRaw   *int
	evEstimatedStationChargeDurationUnit  string

	evTargetRangeChargeAC     *float64
	evTargetRangeChargeACRaw  *float64
	evTargetRangeChargeACUnit string
	evTargetRangeChargeDC     *float64
	evTargetRangeChargeDCRaw  *float64
	evTargetRangeChargeDCUnit string

	evFirstDepartureClimateTemperature      *float64
	evFirstDepartureClimateTemperatureRaw   *float64
	evFirstDepartureClimateTemperatureUnit  string
	evSecondDepartureClimateTemperature     *float64
	evSecondDepartureClimateTemperatureRaw  *float64
	evSecondDepartureClimateTemperatureUnit string

	// 逆地理编码
	geocodeName    string
	geocodeAddress string

	// 时间戳
	lastUpdatedAt *time.Time

	// 位置
	locationLatitude    *float64
	locationLongitude   *float64
	locationLastSetTime *time.Time

	// 排序集合，见 trip.go
	dailyStats    []DailyDrivingStats
	monthTripInfo *MonthTripInfo
	dayTripInfo   *DayTripInfo

	logger *zap.Logger
}

// NewVehicle 创建车辆记录
// logger 为 nil 时使用 no-op logger；Enabled 默认开启，时区默认 UTC
func NewVehicle(logger *zap.Logger) *Vehicle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Vehicle{
		Enabled:  true,
		Timezone: time.UTC,
		logger:   logger,
	}
}

// Geocode 逆地理编码结果（名称 + 地址）
type Geocode struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

// SetGeocode 设置逆地理编码结果
// 传入 nil 会同时清空名称和地址，名称和地址永远成对写入
func (v *Vehicle) SetGeocode(g *Geocode) {
	if g != nil {
		v.geocodeName = g.Name
		v.geocodeAddress = g.Address
	} else {
		v.geocodeName = ""
		v.geocodeAddress = ""
	}
}

// Geocode 返回 (名称, 地址)
func (v *Vehicle) Geocode() (name, address string) {
	return v.geocodeName, v.geocodeAddress
}

// SetLastUpdatedAt 更新车辆状态时间戳
// 上游存在时区偏移被重复应用的已知问题，会导致时间戳出现"倒退"
// (kia_uvo issue #931)。两侧都有值且新值早于旧值时，把 UTC 偏移重新
// 加回一次；若修正后仍早于旧值，则视为噪声丢弃，保留旧值。
// 首次赋值或旧值为空时不做任何修正，原样存储（包括解析失败的 nil）。
func (v *Vehicle) SetLastUpdatedAt(value any) {
	newest := convert.ToLocalDatetime(value)
	previous := v.lastUpdatedAt
	if newest != nil && previous != nil {
		if newest.Before(*previous) {
			_, offset := newest.Zone()
			corrected := newest.Add(time.Duration(offset) * time.Second)
			if !corrected.Before(*previous) {
				newest = &corrected
			}
			if newest.Before(*previous) {
				// 修正后仍然倒退，保留旧值
				v.logger.Debug("Discarding stale last_updated_at",
					zap.Time("previous", *previous),
					zap.Time("incoming", *newest))
				newest = previous
			}
		}
	}
	v.lastUpdatedAt = newest
}

// LastUpdatedAt 返回车辆状态时间戳
func (v *Vehicle) LastUpdatedAt() *time.Time {
	return v.lastUpdatedAt
}

// LocationUpdate 位置赋值输入
// Timestamp 接受 pkg/convert.ToLocalDatetime 支持的任意形式
type LocationUpdate struct {
	Latitude  float64
	Longitude float64
	Timestamp any
}

// SetLocation 更新车辆位置
// 时间戳独立解析，不与 LastUpdatedAt 做任何交叉修正
func (v *Vehicle) SetLocation(loc LocationUpdate) {
	lat := loc.Latitude
	lng := loc.Longitude
	v.locationLatitude = &lat
	v.locationLongitude = &lng
	v.locationLastSetTime = convert.ToLocalDatetime(loc.Timestamp)
}

// Location 返回 (经度, 纬度)
// 注意返回顺序与 SetLocation 的纬度/经度入参相反，下游消费者依赖该顺序
func (v *Vehicle) Location() (longitude, latitude *float64) {
	return v.locationLongitude, v.locationLatitude
}

// LocationLatitude 返回纬度
func (v *Vehicle) LocationLatitude() *float64 {
	return v.locationLatitude
}

// LocationLongitude 返回经度
func (v *Vehicle) LocationLongitude() *float64 {
	return v.locationLongitude
}

// LocationLastUpdatedAt 返回位置的采集时间
// 可能与 LastUpdatedAt 不一致，取两者较新值由调用方自行计算
func (v *Vehicle) LocationLastUpdatedAt() *time.Time {
	return v.locationLastSetTime
}
