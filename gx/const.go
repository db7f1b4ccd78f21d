package gx

const (
	// Signature opens every GX file: "xgcode 1.0\n" plus a NUL byte.
	Signature = "xgcode 1.0\n\x00"

	ThumbnailWidth  = 80
	ThumbnailHeight = 60

	// a 24-bit BMP: 14 byte file header, 40 byte info header, 240 byte rows
	bitmapSize = 14 + 40 + ThumbnailWidth*3*ThumbnailHeight

	// HeaderSize is the signature plus the numeric header, i.e. the offset
	// of the thumbnail bitmap.
	HeaderSize = 58

	ExtrudersSingle = 1
	ExtrudersDual   = 2
)

const (
	ToolPrimary   = "T0"
	ToolSecondary = "T1"

	toolLinePrimary = ToolPrimary + " ; Set primary extruder\n"
	toolLineFirst   = ToolPrimary + " ; Set first extruder\n"
	toolLineSecond  = ToolSecondary + " ; Set second extruder\n"

	// MarkExecutableStart is the comment after which a dual extruder job
	// selects both tools.
	MarkExecutableStart = "; Executable_black_start"

	MarkThumbnailBegin = "thumbnail begin"
	MarkThumbnailEnd   = "thumbnail end"

	// only the first lines are searched for an existing T0
	toolScanLines = 10
)

// Recognized slicer comments.
const (
	KeyEstimatedTime  = "; estimated printing time (normal mode) ="
	KeyFilamentUsed   = "; filament used [mm] ="
	KeyLayerHeight    = "; layer_height ="
	KeyMaxSpeedX      = "; machine_max_speed_x ="
	KeyFirstLayerBed  = "; first_layer_bed_temperature ="
	KeyNozzleTemp     = "; nozzle_temperature ="
	defaultPrintSpeed = 60
)

const (
	maxUint64   = 1<<64 - 1
	maxInt64    = 1<<63 - 1
	absMinInt64 = 1 << 63
)
