package vehicle

import "time"

// VehicleLocation 车辆位置信息
type VehicleLocation struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"long"`
	Time      time.Time `json:"time"`
}

// CachedVehicleState 车辆状态缓存
// 保存上一次成功轮询得到的原始响应片段，供部分刷新时回填
type CachedVehicleState struct {
	Location     *VehicleLocation `json:"location,omitempty"`
	Details      map[string]any   `json:"details,omitempty"`
	CurrentState map[string]any   `json:"current_state,omitempty"`
}
