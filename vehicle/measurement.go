package vehicle

import "github.com/langchou/uvogazer/pkg/convert"

// Measurement 带单位的测量值
// 值和单位总是由同一次 Set 调用成对写入，单位永远不会被单独更新
type Measurement struct {
	Value float64
	Unit  string
}

// RawMeasurement 未经解析的测量值
// 上游 API 的部分数值字段可能是字符串（如 "123.4"）或哨兵值（如 "OFF"）
type RawMeasurement struct {
	Value any
	Unit  string
}

// DurationMeasurement 时长估算值（分钟数 + 单位）
type DurationMeasurement struct {
	Value int
	Unit  string
}

// SetTotalDrivingRange 设置总续航里程
func (v *Vehicle) SetTotalDrivingRange(m Measurement) {
	value := m.Value
	v.totalDrivingRangeRaw = &value
	v.totalDrivingRangeUnit = m.Unit
	v.totalDrivingRange = &value
}

// TotalDrivingRange 返回总续航里程
func (v *Vehicle) TotalDrivingRange() *float64 {
	return v.totalDrivingRange
}

// TotalDrivingRangeUnit 返回总续航里程单位
func (v *Vehicle) TotalDrivingRangeUnit() string {
	return v.totalDrivingRangeUnit
}

// SetOdometer 设置里程表读数
// 上游该字段可能是数值或字符串，经容错浮点解析后存储
func (v *Vehicle) SetOdometer(m RawMeasurement) {
	floatValue := convert.ToFloat64(m.Value)
	v.odometerRaw = floatValue
	v.odometerUnit = m.Unit
	v.odometer = floatValue
}

// Odometer 返回里程表读数
func (v *Vehicle) Odometer() *float64 {
	return v.odometer
}

// OdometerUnit 返回里程表单位
func (v *Vehicle) OdometerUnit() string {
	return v.odometerUnit
}

// SetAirTemperature 设置车内温度
// 空调关闭时上游在数值字段里返回字符串哨兵 "OFF"，此时当前值
// 置空（下游期望"不可用"而不是一个非数值），原始值仍保留 "OFF"
func (v *Vehicle) SetAirTemperature(m RawMeasurement) {
	v.airTemperatureRaw = m.Value
	v.airTemperatureUnit = m.Unit
	if s, ok := m.Value.(string); ok && s == "OFF" {
		v.airTemperature = nil
		return
	}
	v.airTemperature = convert.ToFloat64(m.Value)
}

// AirTemperature 返回车内温度
func (v *Vehicle) AirTemperature() *float64 {
	return v.airTemperature
}

// AirTemperatureUnit 返回车内温度单位
func (v *Vehicle) AirTemperatureUnit() string {
	return v.airTemperatureUnit
}

// SetNextServiceDistance 设置距下次保养里程
func (v *Vehicle) SetNextServiceDistance(m Measurement) {
	value := m.Value
	v.nextServiceDistanceRaw = &value
	v.nextServiceDistanceUnit = m.Unit
	v.nextServiceDistance = &value
}

// NextServiceDistance 返回距下次保养里程
func (v *Vehicle) NextServiceDistance() *float64 {
	return v.nextServiceDistance
}

// NextServiceDistanceUnit 返回距下次保养里程单位
func (v *Vehicle) NextServiceDistanceUnit() string {
	return v.nextServiceDistanceUnit
}

// SetLastServiceDistance 设置上次保养后里程
func (v *Vehicle) SetLastServiceDistance(m Measurement) {
	value := m.Value
	v.lastServiceDistanceRaw = &value
	v.lastServiceDistanceUnit = m.Unit
	v.lastServiceDistance = &value
}

// LastServiceDistance 返回上次保养后里程
func (v *Vehicle) LastServiceDistance() *float64 {
	return v.lastServiceDistance
}

// LastServiceDistanceUnit 返回上次保养后里程单位
func (v *Vehicle) LastServiceDistanceUnit() string {
	return v.lastServiceDistanceUnit
}

// SetEVDrivingRange 设置纯电续航里程
func (v *Vehicle) SetEVDrivingRange(m Measurement) {
	value := m.Value
	v.evDrivingRangeRaw = &value
	v.evDrivingRangeUnit = m.Unit
	v.evDrivingRange = &value
}

// EVDrivingRange 返回纯电续航里程
func (v *Vehicle) EVDrivingRange() *float64 {
	return v.evDrivingRange
}

// EVDrivingRangeUnit 返回纯电续航里程单位
func (v *Vehicle) EVDrivingRangeUnit() string {
	return v.evDrivingRangeUnit
}

// SetFuelDrivingRange 设置燃油续航里程
func (v *Vehicle) SetFuelDrivingRange(m Measurement) {
	value := m.Value
	v.fuelDrivingRangeRaw = &value
	v.fuelDrivingRangeUnit = m.Unit
	v.fuelDrivingRange = &value
}

// FuelDrivingRange 返回燃油续航里程
func (v *Vehicle) FuelDrivingRange() *float64 {
	return v.fuelDrivingRange
}

// FuelDrivingRangeUnit 返回燃油续航里程单位
func (v *Vehicle) FuelDrivingRangeUnit() string {
	return v.fuelDrivingRangeUnit
}

// SetEVEstimatedCurrentChargeDuration 设置按当前充电方式的预计充满时长
func (v *Vehicle) SetEVEstimatedCurrentChargeDuration(m DurationMeasurement) {
	value := m.Value
	v.evEstimatedCurrentChargeDurationRaw = &value
	v.evEstimatedCurrentChargeDurationUnit = m.Unit
	v.evEstimatedCurrentChargeDuration = &value
}

// EVEstimatedCurrentChargeDuration 返回按当前充电方式的预计充满时长
func (v *Vehicle) EVEstimatedCurrentChargeDuration() *int {
	return v.evEstimatedCurrentChargeDuration
}

// EVEstimatedCurrentChargeDurationUnit 返回对应单位
func (v *Vehicle) EVEstimatedCurrentChargeDurationUnit() string {
	return v.evEstimatedCurrentChargeDurationUnit
}

// SetEVEstimatedFastChargeDuration 设置快充预计充满时长
func (v *Vehicle) SetEVEstimatedFastChargeDuration(m DurationMeasurement) {
	value := m.Value
	v.evEstimatedFastChargeDurationRaw = &value
	v.evEstimatedFastChargeDurationUnit = m.Unit
	v.evEstimatedFastChargeDuration = &value
}

// EVEstimatedFastChargeDuration 返回快充预计充满时长
func (v *Vehicle) EVEstimatedFastChargeDuration() *int {
	return v.evEstimatedFastChargeDuration
}

// EVEstimatedFastChargeDurationUnit 返回对应单位
func (v *Vehicle) EVEstimatedFastChargeDurationUnit() string {
	return v.evEstimatedFastChargeDurationUnit
}

// SetEVEstimatedPortableChargeDuration 设置便携充电器预计充满时长
func (v *Vehicle) SetEVEstimatedPortableChargeDuration(m DurationMeasurement) {
	value := m.Value
	v.evEstimatedPortableChargeDurationRaw = &value
	v.evEstimatedPortableChargeDurationUnit = m.Unit
	v.evEstimatedPortableChargeDuration = &value
}

// EVEstimatedPortableChargeDuration 返回便携充电器预计充满时长
func (v *Vehicle) EVEstimatedPortableChargeDuration() *int {
	return v.evEstimatedPortableChargeDuration
}

// EVEstimatedPortableChargeDurationUnit 返回对应单位
func (v *Vehicle) EVEstimatedPortableChargeDurationUnit() string {
	return v.evEstimatedPortableChargeDurationUnit
}

// SetEVEstimatedStationChargeDuration 设置充电桩预计充满时长
func (v *Vehicle) SetEVEstimatedStationChargeDuration(m DurationMeasurement) {
	value := m.Value
	v.evEstimatedStationChargeDurationRaw = &value
	v.evEstimatedStationChargeDurationUnit = m.Unit
	v.evEstimatedStationChargeDuration = &value
}

// EVEstimatedStationChargeDuration 返回充电桩预计充满时长
func (v *Vehicle) EVEstimatedStationChargeDuration() *int {
	return v.evEstimatedStationChargeDuration
}

// EVEstimatedStationChargeDurationUnit 返回对应单位
func (v *Vehicle) EVEstimatedStationChargeDurationUnit() string {
	return v.evEstimatedStationChargeDurationUnit
}

// SetEVTargetRangeChargeAC 设置交流充电目标续航
func (v *Vehicle) SetEVTargetRangeChargeAC(m Measurement) {
	value := m.Value
	v.evTargetRangeChargeACRaw = &value
	v.evTargetRangeChargeACUnit = m.Unit
	v.evTargetRangeChargeAC = &value
}

// EVTargetRangeChargeAC 返回交流充电目标续航
func (v *Vehicle) EVTargetRangeChargeAC() *float64 {
	return v.evTargetRangeChargeAC
}

// EVTargetRangeChargeACUnit 返回交流充电目标续航单位
func (v *Vehicle) EVTargetRangeChargeACUnit() string {
	return v.evTargetRangeChargeACUnit
}

// SetEVTargetRangeChargeDC 设置直流充电目标续航
func (v *Vehicle) SetEVTargetRangeChargeDC(m Measurement) {
	value := m.Value
	v.evTargetRangeChargeDCRaw = &value
	v.evTargetRangeChargeDCUnit = m.Unit
	v.evTargetRangeChargeDC = &value
}

// EVTargetRangeChargeDC 返回直流充电目标续航
func (v *Vehicle) EVTargetRangeChargeDC() *float64 {
	return v.evTargetRangeChargeDC
}

// EVTargetRangeChargeDCUnit 返回直流充电目标续航单位
func (v *Vehicle) EVTargetRangeChargeDCUnit() string {
	return v.evTargetRangeChargeDCUnit
}

// SetEVFirstDepartureClimateTemperature 设置第一出发预约的空调温度
func (v *Vehicle) SetEVFirstDepartureClimateTemperature(m Measurement) {
	value := m.Value
	v.evFirstDepartureClimateTemperatureRaw = &value
	v.evFirstDepartureClimateTemperatureUnit = m.Unit
	v.evFirstDepartureClimateTemperature = &value
}

// EVFirstDepartureClimateTemperature 返回第一出发预约的空调温度
func (v *Vehicle) EVFirstDepartureClimateTemperature() *float64 {
	return v.evFirstDepartureClimateTemperature
}

// EVFirstDepartureClimateTemperatureUnit 返回对应单位
func (v *Vehicle) EVFirstDepartureClimateTemperatureUnit() string {
	return v.evFirstDepartureClimateTemperatureUnit
}

// SetEVSecondDepartureClimateTemperature 设置第二出发预约的空调温度
func (v *Vehicle) SetEVSecondDepartureClimateTemperature(m Measurement) {
	value := m.Value
	v.evSecondDepartureClimateTemperatureRaw = &value
	v.evSecondDepartureClimateTemperatureUnit = m.Unit
	v.evSecondDepartureClimateTemperature = &value
}

// EVSecondDepartureClimateTemperature 返回第二出发预约的空调温度
func (v *Vehicle) EVSecondDepartureClimateTemperature() *float64 {
	return v.evSecondDepartureClimateTemperature
}

// EVSecondDepartureClimateTemperatureUnit 返回对应单位
func (v *Vehicle) EVSecondDepartureClimateTemperatureUnit() string {
	return v.evSecondDepartureClimateTemperatureUnit
}
