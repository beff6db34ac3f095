package telemetry

import (
	"time"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/errors"
)

// Category identifies the subsystem a record was collected from.
type Category string

const (
	CategorySystem    Category = "system"
	CategoryThermal   Category = "thermal"
	CategoryPower     Category = "power"
	CategoryProcessor Category = "processor"
	CategoryMemory    Category = "memory"
	CategoryNetwork   Category = "network"
	CategoryStorage   Category = "storage"
)

// AllCategories lists every category in collection order. The order is
// fixed so repeated runs produce deterministic output.
var AllCategories = []Category{
	CategorySystem,
	CategoryThermal,
	CategoryPower,
	CategoryProcessor,
	CategoryMemory,
	CategoryNetwork,
	CategoryStorage,
}

// ParseCategory validates a category name from the CLI.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, nil
		}
	}

	return "", errors.New().WithData(errors.ErrInvalidCategory, s)
}

// RecordType narrows a category to the kind of hardware unit a record
// describes. The type determines which optional fields are meaningful.
type RecordType string

const (
	TypeSystem       RecordType = "system"
	TypeTemperature  RecordType = "temperature"
	TypeFan          RecordType = "fan"
	TypePowerControl RecordType = "power_control"
	TypeVoltage      RecordType = "voltage"
	TypePowerSupply  RecordType = "power_supply"
	TypeCPU          RecordType = "cpu"
	TypeDIMM         RecordType = "dimm"
	TypeInterface    RecordType = "interface"
	TypeController   RecordType = "controller"
	TypeDrive        RecordType = "drive"
)

// BootSource is the boot-override view embedded in a system record.
type BootSource struct {
	OverrideEnabled string `json:"boot_source_override_enabled,omitempty"`
	OverrideTarget  string `json:"boot_source_override_target,omitempty"`
	OverrideMode    string `json:"boot_source_override_mode,omitempty"`
	UefiTarget      string `json:"uefi_target_boot_source_override,omitempty"`
}

// ProcessorSummary is derived from the system resource without extra
// requests.
type ProcessorSummary struct {
	Count  int    `json:"count"`
	Model  string `json:"model,omitempty"`
	Health string `json:"status_health,omitempty"`
	State  string `json:"status_state,omitempty"`
}

// MemorySummary is derived from the system resource without extra
// requests.
type MemorySummary struct {
	TotalSystemMemoryGiB float64 `json:"total_system_memory_gib"`
	Health               string  `json:"status_health,omitempty"`
	State                string  `json:"status_state,omitempty"`
}

// Record is the normalized unit of collected telemetry. Timestamp, Host,
// Category and Type are present on every record; all other fields are
// optional and populated only when the source resource reported them.
// An absent field means "not reported by this hardware", never zero,
// which is why numeric readings are pointers.
type Record struct {
	Timestamp time.Time  `json:"timestamp"`
	Host      string     `json:"host"`
	Category  Category   `json:"category"`
	Type      RecordType `json:"type"`

	// Identity, shared across categories
	SensorID        string `json:"sensor_id,omitempty"`
	SensorName      string `json:"sensor_name,omitempty"`
	Name            string `json:"name,omitempty"`
	Description     string `json:"description,omitempty"`
	Manufacturer    string `json:"manufacturer,omitempty"`
	Model           string `json:"model,omitempty"`
	SerialNumber    string `json:"serial_number,omitempty"`
	PartNumber      string `json:"part_number,omitempty"`
	FirmwareVersion string `json:"firmware_version,omitempty"`

	// Health metadata
	Health          string `json:"health,omitempty"`
	State           string `json:"state,omitempty"`
	PhysicalContext string `json:"physical_context,omitempty"`

	// System
	PowerState       string            `json:"power_state,omitempty"`
	BiosVersion      string            `json:"bios_version,omitempty"`
	UUID             string            `json:"uuid,omitempty"`
	BootSource       *BootSource       `json:"boot_source,omitempty"`
	ProcessorSummary *ProcessorSummary `json:"processor_summary,omitempty"`
	MemorySummary    *MemorySummary    `json:"memory_summary,omitempty"`

	// Thermal
	ReadingCelsius         *float64 `json:"reading_celsius,omitempty"`
	UpperThresholdCritical *float64 `json:"upper_threshold_critical,omitempty"`
	UpperThresholdFatal    *float64 `json:"upper_threshold_fatal,omitempty"`
	LowerThresholdCritical *float64 `json:"lower_threshold_critical,omitempty"`
	LowerThresholdFatal    *float64 `json:"lower_threshold_fatal,omitempty"`
	ReadingRPM             *int     `json:"reading_rpm,omitempty"`
	ReadingUnits           string   `json:"reading_units,omitempty"`

	// Power
	PowerConsumedWatts   *float64 `json:"power_consumed_watts,omitempty"`
	PowerRequestedWatts  *float64 `json:"power_requested_watts,omitempty"`
	PowerAvailableWatts  *float64 `json:"power_available_watts,omitempty"`
	PowerCapacityWatts   *float64 `json:"power_capacity_watts,omitempty"`
	PowerAllocatedWatts  *float64 `json:"power_allocated_watts,omitempty"`
	PowerLimitWatts      *float64 `json:"power_limit_watts,omitempty"`
	ReadingVolts         *float64 `json:"reading_volts,omitempty"`
	PowerInputWatts      *float64 `json:"power_input_watts,omitempty"`
	PowerOutputWatts     *float64 `json:"power_output_watts,omitempty"`
	EfficiencyPercent    *float64 `json:"efficiency_percent,omitempty"`
	LineInputVoltage     *float64 `json:"line_input_voltage,omitempty"`
	LineInputVoltageType string   `json:"line_input_voltage_type,omitempty"`

	// Processor
	ProcessorID        string   `json:"processor_id,omitempty"`
	Socket             string   `json:"socket,omitempty"`
	ProcessorType      string   `json:"processor_type,omitempty"`
	Architecture       string   `json:"architecture,omitempty"`
	InstructionSet     string   `json:"instruction_set,omitempty"`
	MaxSpeedMHz        *int     `json:"max_speed_mhz,omitempty"`
	TotalCores         *int     `json:"total_cores,omitempty"`
	TotalThreads       *int     `json:"total_threads,omitempty"`
	OperatingSpeedMHz  *int     `json:"operating_speed_mhz,omitempty"`
	TemperatureCelsius *float64 `json:"temperature_celsius,omitempty"`
	ConsumedPowerWatts *float64 `json:"consumed_power_watts,omitempty"`

	// Memory
	MemoryID         string `json:"memory_id,omitempty"`
	DeviceLocator    string `json:"device_locator,omitempty"`
	MemoryType       string `json:"memory_type,omitempty"`
	MemoryDeviceType string `json:"memory_device_type,omitempty"`
	CapacityMiB      *int64 `json:"capacity_mib,omitempty"`
	AllowedSpeedsMHz []int  `json:"allowed_speeds_mhz,omitempty"`
	RankCount        *int   `json:"rank_count,omitempty"`
	DataWidthBits    *int   `json:"data_width_bits,omitempty"`
	BusWidthBits     *int   `json:"bus_width_bits,omitempty"`

	// Network
	InterfaceID string `json:"interface_id,omitempty"`
	Ports       *int   `json:"ports,omitempty"`

	// Storage
	ControllerID       string   `json:"controller_id,omitempty"`
	SupportedProtocols []string `json:"supported_protocols,omitempty"`
	DriveID            string   `json:"drive_id,omitempty"`
	CapacityBytes      *int64   `json:"capacity_bytes,omitempty"`
	MediaType          string   `json:"media_type,omitempty"`
	Protocol           string   `json:"protocol,omitempty"`
	RotationSpeedRPM   *float64 `json:"rotation_speed_rpm,omitempty"`
	FailurePredicted   *bool    `json:"failure_predicted,omitempty"`
	IndicatorLED       string   `json:"indicator_led,omitempty"`
	Location           string   `json:"location,omitempty"`
}

func newRecord(host string, ts time.Time, category Category, typ RecordType) Record {
	return Record{
		Timestamp: ts,
		Host:      host,
		Category:  category,
		Type:      typ,
	}
}
