package wildcards

// File extensions used across the suite, without the leading dot.
const (
	SchematicSymbolFileExtension  = "sym"
	SchematicLibraryFileExtension = "lib"
	SchematicBackupFileExtension  = "bak"

	VrmlFileExtension = "wrl"

	ProjectFileExtension   = "pro"
	SchematicFileExtension = "sch"
	NetlistFileExtension   = "net"
	ComponentFileExtension = "cmp"
	GerberFileExtension    = "gbr"
	GerberJobFileExtension = "gbrjob"
	HtmlFileExtension      = "html"

	LegacyPcbFileExtension       = "brd"
	KiCadPcbFileExtension        = "kicad_pcb"
	PageLayoutDescrFileExtension = "kicad_wks"

	PdfFileExtension              = "pdf"
	MacrosFileExtension           = "mcr"
	DrillFileExtension            = "drl"
	SVGFileExtension              = "svg"
	ReportFileExtension           = "rpt"
	FootprintPlaceFileExtension   = "pos"
	KiCadLib3DShapesPathExtension = "3dshapes" // 3D shapes default libpath

	KiCadFootprintLibPathExtension  = "pretty" // footprint library directory
	LegacyFootprintLibPathExtension = "mod"
	EagleFootprintLibPathExtension  = "lbr"

	KiCadFootprintFileExtension      = "kicad_mod"
	GedaPcbFootprintLibFileExtension = "fp"
	SpecctraDsnFileExtension         = "dsn"
	IpcD356FileExtension             = "d356"

	PngFileExtension  = "png"
	JpegFileExtension = "jpg"
)
