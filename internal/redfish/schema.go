package redfish

// Wire structures for the subset of the Redfish schema this tool reads.
// Optional numeric and boolean readings are pointers so that a value the
// firmware did not report stays distinguishable from zero.

// ODataRef is a navigation link to another resource.
type ODataRef struct {
	ID string `json:"@odata.id"`
}

// Collection is the common shape of Redfish collection resources.
type Collection struct {
	Members []ODataRef `json:"Members"`
	Count   int        `json:"Members@odata.count"`
}

// Status carries the health metadata attached to most resources.
type Status struct {
	Health string `json:"Health"`
	State  string `json:"State"`
}

// ServiceRoot is the fixed top-level resource at /redfish/v1/.
type ServiceRoot struct {
	Systems          *ODataRef `json:"Systems"`
	Chassis          *ODataRef `json:"Chassis"`
	Managers         *ODataRef `json:"Managers"`
	TelemetryService *ODataRef `json:"TelemetryService"`
}

// ResetAction describes the #ComputerSystem.Reset action block.
type ResetAction struct {
	Target     string `json:"target"`
	ActionInfo string `json:"@Redfish.ActionInfo"`
}

// Boot is the boot-override configuration block of a system resource.
type Boot struct {
	BootSourceOverrideEnabled    string   `json:"BootSourceOverrideEnabled"`
	BootSourceOverrideTarget     string   `json:"BootSourceOverrideTarget"`
	BootSourceOverrideMode       string   `json:"BootSourceOverrideMode"`
	UefiTargetBootSourceOverride string   `json:"UefiTargetBootSourceOverride"`
	BootOrder                    []string `json:"BootOrder"`
	AllowableTargets             []string `json:"BootSourceOverrideTarget@Redfish.AllowableValues"`
}

// ComputerSystem is the system resource under the Systems collection.
type ComputerSystem struct {
	ID           string `json:"Id"`
	Name         string `json:"Name"`
	Manufacturer string `json:"Manufacturer"`
	Model        string `json:"Model"`
	SerialNumber string `json:"SerialNumber"`
	PartNumber   string `json:"PartNumber"`
	UUID         string `json:"UUID"`
	BiosVersion  string `json:"BiosVersion"`
	PowerState   string `json:"PowerState"`
	IndicatorLED string `json:"IndicatorLED"`
	Status       Status `json:"Status"`
	Boot         Boot   `json:"Boot"`

	ProcessorSummary struct {
		Count  int    `json:"Count"`
		Model  string `json:"Model"`
		Status Status `json:"Status"`
	} `json:"ProcessorSummary"`

	MemorySummary struct {
		TotalSystemMemoryGiB float64 `json:"TotalSystemMemoryGiB"`
		Status               Status  `json:"Status"`
	} `json:"MemorySummary"`

	Processors        *ODataRef `json:"Processors"`
	Memory            *ODataRef `json:"Memory"`
	NetworkInterfaces *ODataRef `json:"NetworkInterfaces"`
	Storage           *ODataRef `json:"Storage"`

	Actions struct {
		Reset ResetAction `json:"#ComputerSystem.Reset"`
	} `json:"Actions"`
}

// Thermal is the chassis thermal resource.
type Thermal struct {
	Temperatures []Temperature `json:"Temperatures"`
	Fans         []Fan         `json:"Fans"`
}

// Temperature is one temperature sensor entry.
type Temperature struct {
	MemberID               string   `json:"MemberId"`
	Name                   string   `json:"Name"`
	ReadingCelsius         *float64 `json:"ReadingCelsius"`
	UpperThresholdCritical *float64 `json:"UpperThresholdCritical"`
	UpperThresholdFatal    *float64 `json:"UpperThresholdFatal"`
	LowerThresholdCritical *float64 `json:"LowerThresholdCritical"`
	PhysicalContext        string   `json:"PhysicalContext"`
	Status                 Status   `json:"Status"`
}

// Fan is one fan entry of the thermal resource.
type Fan struct {
	MemberID               string `json:"MemberId"`
	Name                   string `json:"Name"`
	Reading                *int   `json:"Reading"`
	ReadingUnits           string `json:"ReadingUnits"`
	UpperThresholdCritical *int   `json:"UpperThresholdCritical"`
	LowerThresholdCritical *int   `json:"LowerThresholdCritical"`
	PhysicalContext        string `json:"PhysicalContext"`
	Status                 Status `json:"Status"`
}

// Power is the chassis power resource.
type Power struct {
	PowerControl  []PowerControl `json:"PowerControl"`
	Voltages      []Voltage      `json:"Voltages"`
	PowerSupplies []PowerSupply  `json:"PowerSupplies"`
}

// PowerControl is one power-domain entry.
type PowerControl struct {
	MemberID            string   `json:"MemberId"`
	Name                string   `json:"Name"`
	PowerConsumedWatts  *float64 `json:"PowerConsumedWatts"`
	PowerRequestedWatts *float64 `json:"PowerRequestedWatts"`
	PowerAvailableWatts *float64 `json:"PowerAvailableWatts"`
	PowerCapacityWatts  *float64 `json:"PowerCapacityWatts"`
	PowerAllocatedWatts *float64 `json:"PowerAllocatedWatts"`
	PowerLimit          struct {
		LimitInWatts *float64 `json:"LimitInWatts"`
	} `json:"PowerLimit"`
	Status Status `json:"Status"`
}

// Voltage is one voltage sensor entry.
type Voltage struct {
	MemberID               string   `json:"MemberId"`
	Name                   string   `json:"Name"`
	ReadingVolts           *float64 `json:"ReadingVolts"`
	UpperThresholdCritical *float64 `json:"UpperThresholdCritical"`
	UpperThresholdFatal    *float64 `json:"UpperThresholdFatal"`
	LowerThresholdCritical *float64 `json:"LowerThresholdCritical"`
	LowerThresholdFatal    *float64 `json:"LowerThresholdFatal"`
	PhysicalContext        string   `json:"PhysicalContext"`
	Status                 Status   `json:"Status"`
}

// PowerSupply is one PSU entry.
type PowerSupply struct {
	MemberID             string   `json:"MemberId"`
	Name                 string   `json:"Name"`
	PowerCapacityWatts   *float64 `json:"PowerCapacityWatts"`
	PowerInputWatts      *float64 `json:"PowerInputWatts"`
	PowerOutputWatts     *float64 `json:"PowerOutputWatts"`
	EfficiencyPercent    *float64 `json:"EfficiencyPercent"`
	LineInputVoltage     *float64 `json:"LineInputVoltage"`
	LineInputVoltageType string   `json:"LineInputVoltageType"`
	Model                string   `json:"Model"`
	Manufacturer         string   `json:"Manufacturer"`
	SerialNumber         string   `json:"SerialNumber"`
	PartNumber           string   `json:"PartNumber"`
	FirmwareVersion      string   `json:"FirmwareVersion"`
	Status               Status   `json:"Status"`
}

// Processor is one member of the Processors collection.
type Processor struct {
	ID                    string    `json:"Id"`
	Socket                string    `json:"Socket"`
	ProcessorType         string    `json:"ProcessorType"`
	ProcessorArchitecture string    `json:"ProcessorArchitecture"`
	InstructionSet        string    `json:"InstructionSet"`
	Manufacturer          string    `json:"Manufacturer"`
	Model                 string    `json:"Model"`
	MaxSpeedMHz           *int      `json:"MaxSpeedMHz"`
	TotalCores            *int      `json:"TotalCores"`
	TotalThreads          *int      `json:"TotalThreads"`
	Status                Status    `json:"Status"`
	Metrics               *ODataRef `json:"ProcessorMetrics"`
}

// ProcessorMetrics carries live processor readings where supported.
type ProcessorMetrics struct {
	OperatingSpeedMHz  *int     `json:"OperatingSpeedMHz"`
	TemperatureCelsius *float64 `json:"TemperatureCelsius"`
	ConsumedPowerWatts *float64 `json:"ConsumedPowerWatts"`
}

// Memory is one member of the Memory collection, a single DIMM.
type Memory struct {
	ID                string    `json:"Id"`
	DeviceLocator     string    `json:"DeviceLocator"`
	MemoryType        string    `json:"MemoryType"`
	MemoryDeviceType  string    `json:"MemoryDeviceType"`
	CapacityMiB       *int64    `json:"CapacityMiB"`
	OperatingSpeedMhz *int      `json:"OperatingSpeedMhz"`
	AllowedSpeedsMHz  []int     `json:"AllowedSpeedsMHz"`
	Manufacturer      string    `json:"Manufacturer"`
	PartNumber        string    `json:"PartNumber"`
	SerialNumber      string    `json:"SerialNumber"`
	RankCount         *int      `json:"RankCount"`
	DataWidthBits     *int      `json:"DataWidthBits"`
	BusWidthBits      *int      `json:"BusWidthBits"`
	Status            Status    `json:"Status"`
	Metrics           *ODataRef `json:"MemoryMetrics"`
}

// MemoryMetrics carries live DIMM readings where supported.
type MemoryMetrics struct {
	TemperatureCelsius *float64 `json:"TemperatureCelsius"`
	ConsumedPowerWatts *float64 `json:"ConsumedPowerWatts"`
}

// NetworkInterface is one member of the NetworkInterfaces collection.
// The port count annotation is embedded in the interface payload, so no
// separate fetch of the port collection is needed.
type NetworkInterface struct {
	ID          string    `json:"Id"`
	Name        string    `json:"Name"`
	Description string    `json:"Description"`
	Status      Status    `json:"Status"`
	Ports       *ODataRef `json:"NetworkPorts"`
	PortCount   *int      `json:"NetworkPorts@odata.count"`
}

// Storage is one member of the Storage collection, a controller with
// its attached drives.
type Storage struct {
	ID                       string     `json:"Id"`
	Name                     string     `json:"Name"`
	Manufacturer             string     `json:"Manufacturer"`
	Model                    string     `json:"Model"`
	FirmwareVersion          string     `json:"FirmwareVersion"`
	SupportedDeviceProtocols []string   `json:"SupportedDeviceProtocols"`
	Status                   Status     `json:"Status"`
	Drives                   []ODataRef `json:"Drives"`
	Volumes                  *ODataRef  `json:"Volumes"`
}

// PartLocation identifies where a drive sits in the chassis.
type PartLocation struct {
	ServiceLabel         string `json:"ServiceLabel"`
	LocationType         string `json:"LocationType"`
	LocationOrdinalValue *int   `json:"LocationOrdinalValue"`
}

// Drive is one physical drive resource.
type Drive struct {
	ID               string   `json:"Id"`
	Name             string   `json:"Name"`
	Manufacturer     string   `json:"Manufacturer"`
	Model            string   `json:"Model"`
	SerialNumber     string   `json:"SerialNumber"`
	CapacityBytes    *int64   `json:"CapacityBytes"`
	MediaType        string   `json:"MediaType"`
	Protocol         string   `json:"Protocol"`
	RotationSpeedRPM *float64 `json:"RotationSpeedRPM"`
	FailurePredicted *bool    `json:"FailurePredicted"`
	IndicatorLED     string   `json:"IndicatorLED"`
	Status           Status   `json:"Status"`
	PhysicalLocation struct {
		PartLocation PartLocation `json:"PartLocation"`
	} `json:"PhysicalLocation"`
}

// Volume is one logical volume resource.
type Volume struct {
	ID            string `json:"Id"`
	Name          string `json:"Name"`
	CapacityBytes *int64 `json:"CapacityBytes"`
	VolumeType    string `json:"VolumeType"`
	RAIDType      string `json:"RAIDType"`
	Status        Status `json:"Status"`
}

// ActionInfo lists the allowable parameter values for an action.
type ActionInfo struct {
	Parameters []struct {
		Name            string   `json:"Name"`
		AllowableValues []string `json:"AllowableValues"`
	} `json:"Parameters"`
}
