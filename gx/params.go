package gx

// Params is the print metadata the firmware shows before a job starts.
// Index 0 of the paired fields is the primary (right) extruder.
type Params struct {
	Extruders          int
	PrintTimeSec       int
	FilamentUsed       [2]int // mm
	LayerHeight        int    // µm
	PrintSpeed         int
	BedTemperature     int
	NozzleTemperatures [2]int
}

func NewParams(extruders int) *Params {
	return &Params{
		Extruders:  extruders,
		PrintSpeed: defaultPrintSpeed,
	}
}

var paramKeys = []string{
	KeyEstimatedTime,
	KeyFilamentUsed,
	KeyLayerHeight,
	KeyMaxSpeedX,
	KeyFirstLayerBed,
	KeyNozzleTemp,
}

// ParseParams scans every line once for the recognized slicer comments. A
// missing comment leaves its default; a recognized comment with a bad value
// fails the whole scan.
func ParseParams(lines []string, extruders int) (*Params, error) {
	p := NewParams(extruders)
	for _, line := range lines {
		key, value, ok := setting(line, paramKeys...)
		if !ok {
			continue
		}
		if err := p.set(key, value); err != nil {
			return nil, &ParseError{Key: key, Value: value, Err: err}
		}
	}

	if p.Extruders != ExtrudersDual {
		p.FilamentUsed[1] = 0
		p.NozzleTemperatures[1] = 0
	}
	return p, nil
}

func (p *Params) set(key, value string) (err error) {
	switch key {
	case KeyEstimatedTime:
		p.PrintTimeSec, err = convertEstimatedTime(value)
	case KeyFilamentUsed:
		p.FilamentUsed, err = pair(value, func(s string) (int, error) {
			return parseFloat(s, 1)
		})
	case KeyLayerHeight:
		p.LayerHeight, err = parseFloat(value, 1000)
	case KeyMaxSpeedX:
		// "500,200" lists normal and silent mode limits
		p.PrintSpeed, err = parseInt(split(value)[0])
	case KeyFirstLayerBed:
		p.BedTemperature, err = parseInt(split(value)[0])
	case KeyNozzleTemp:
		p.NozzleTemperatures, err = pair(value, parseInt)
	}
	return
}

// pair parses the first two entries of a comma separated list. A missing
// second entry is zero.
func pair(value string, parse func(string) (int, error)) (v [2]int, err error) {
	x := split(value)
	if v[0], err = parse(x[0]); err != nil {
		return
	}
	if len(x) > 1 {
		v[1], err = parse(x[1])
	}
	return
}
