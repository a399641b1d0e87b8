package units

// 距离单位常量
const (
	Miles      = "mi"
	Kilometers = "km"
)

// DistanceUnits 距离单位表
// 索引 0: 英里 (北美车型), 索引 1: 公里 (默认)
var DistanceUnits = []string{Miles, Kilometers}

// MilesToKm 英里转公里
func MilesToKm(miles float64) float64 {
	return miles * 1.60934
}

// KmToMiles 公里转英里
func KmToMiles(km float64) float64 {
	return km / 1.60934
}
