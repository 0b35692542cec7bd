package wildcards

import "fyne.io/fyne/v2/lang"

// Category is a named entry of the built-in filter catalog.
type Category struct {
	Name   string
	Filter Filter
}

var (
	schematicSymbolFiles   = Filter{"KiCad drawing symbol files", []string{SchematicSymbolFileExtension}}
	schematicLibraryFiles  = Filter{"KiCad symbol library files", []string{SchematicLibraryFileExtension}}
	projectFiles           = Filter{"KiCad project files", []string{ProjectFileExtension}}
	schematicFiles         = Filter{"KiCad schematic files", []string{SchematicFileExtension}}
	eagleSchematicFiles    = Filter{"Eagle XML schematic files", []string{SchematicFileExtension}}
	eagleFiles             = Filter{"Eagle XML files", []string{SchematicFileExtension, LegacyPcbFileExtension}}
	netlistFiles           = Filter{"KiCad netlist files", []string{NetlistFileExtension}}
	gerberFiles            = Filter{"Gerber files", []string{"pho"}}
	legacyPcbFiles         = Filter{"KiCad printed circuit board files", []string{LegacyPcbFileExtension}}
	eaglePcbFiles          = Filter{"Eagle ver. 6.x XML PCB files", []string{LegacyPcbFileExtension}}
	pcadPcbFiles           = Filter{"P-Cad 200x ASCII PCB files", []string{"pcb"}}
	pcbFiles               = Filter{"KiCad printed circuit board files", []string{KiCadPcbFileExtension}}
	footprintFiles         = Filter{"KiCad footprint files", []string{KiCadFootprintFileExtension}}
	footprintLibPaths      = Filter{"KiCad footprint library paths", []string{KiCadFootprintLibPathExtension}}
	legacyFootprintLibs    = Filter{"Legacy footprint library files", []string{LegacyFootprintLibPathExtension}}
	eagleFootprintLibs     = Filter{"Eagle ver. 6.x XML library files", []string{EagleFootprintLibPathExtension}}
	gedaFootprintLibs      = Filter{"Geda PCB footprint library files", []string{GedaPcbFootprintLibFileExtension}}
	pageLayoutFiles        = Filter{"Page layout design files", []string{PageLayoutDescrFileExtension}}
	componentFiles         = Filter{"KiCad symbol footprint link files", []string{ComponentFileExtension}}
	drillFiles             = Filter{"Drill files", []string{DrillFileExtension, "nc", "xnc"}}
	svgFiles               = Filter{"SVG files", []string{SVGFileExtension}}
	htmlFiles              = Filter{"HTML files", []string{"htm", HtmlFileExtension}}
	csvFiles               = Filter{"CSV Files", []string{"csv"}}
	pdfFiles               = Filter{"Portable document format files", []string{PdfFileExtension}}
	psFiles                = Filter{"PostScript files", []string{"ps"}}
	reportFiles            = Filter{"Report files", []string{ReportFileExtension}}
	footprintPlaceFiles    = Filter{"Footprint place files", []string{FootprintPlaceFileExtension}}
	shapes3DFiles          = Filter{"VRML and X3D files", []string{VrmlFileExtension, "x3d"}}
	idf3DFiles             = Filter{"IDFv3 footprint files", []string{"idf"}}
	textFiles              = Filter{"Text files", []string{"txt"}}
	legacyFootprintExports = Filter{"Legacy footprint export files", []string{"emp"}}
	ercFiles               = Filter{"Electronic rule check file", []string{"erc"}}
	spiceLibraryFiles      = Filter{"Spice library file", []string{"lib"}}
	spiceNetlistFiles      = Filter{"SPICE netlist file", []string{"cir"}}
	cadstarNetlistFiles    = Filter{"CadStar netlist file", []string{"frp"}}
	equFiles               = Filter{"Symbol footprint association files", []string{"equ"}}
	zipFiles               = Filter{"Zip file", []string{"zip"}}
	gencadFiles            = Filter{"GenCAD 1.4 board files", []string{"cad"}}
	dxfFiles               = Filter{"DXF Files", []string{"dxf"}}
	gerberJobFiles         = Filter{"Gerber job file", []string{GerberJobFileExtension}}
	specctraDsnFiles       = Filter{"Specctra DSN file", []string{SpecctraDsnFileExtension}}
	ipcD356Files           = Filter{"IPC-D-356 Test Files", []string{IpcD356FileExtension}}
	workbookFiles          = Filter{"Workbook file", []string{"wbk"}}
	pngFiles               = Filter{"PNG file", []string{PngFileExtension}}
	jpegFiles              = Filter{"Jpeg file", []string{JpegFileExtension, "jpeg"}}
)

// Declaration order is the listing order.
var catalog = []Category{
	{"schematic-symbol", schematicSymbolFiles},
	{"schematic-library", schematicLibraryFiles},
	{"project", projectFiles},
	{"schematic", schematicFiles},
	{"eagle-schematic", eagleSchematicFiles},
	{"eagle", eagleFiles},
	{"netlist", netlistFiles},
	{"gerber", gerberFiles},
	{"legacy-pcb", legacyPcbFiles},
	{"eagle-pcb", eaglePcbFiles},
	{"pcad-pcb", pcadPcbFiles},
	{"pcb", pcbFiles},
	{"footprint", footprintFiles},
	{"footprint-library", footprintLibPaths},
	{"legacy-footprint-library", legacyFootprintLibs},
	{"eagle-footprint-library", eagleFootprintLibs},
	{"geda-footprint-library", gedaFootprintLibs},
	{"page-layout", pageLayoutFiles},
	{"component", componentFiles},
	{"drill", drillFiles},
	{"svg", svgFiles},
	{"html", htmlFiles},
	{"csv", csvFiles},
	{"pdf", pdfFiles},
	{"postscript", psFiles},
	{"report", reportFiles},
	{"footprint-place", footprintPlaceFiles},
	{"shapes-3d", shapes3DFiles},
	{"idf-3d", idf3DFiles},
	{"text", textFiles},
	{"legacy-footprint-export", legacyFootprintExports},
	{"erc", ercFiles},
	{"spice-library", spiceLibraryFiles},
	{"spice-netlist", spiceNetlistFiles},
	{"cadstar-netlist", cadstarNetlistFiles},
	{"equ", equFiles},
	{"zip", zipFiles},
	{"gencad", gencadFiles},
	{"dxf", dxfFiles},
	{"gerber-job", gerberJobFiles},
	{"specctra-dsn", specctraDsnFiles},
	{"ipc-d356", ipcD356Files},
	{"workbook", workbookFiles},
	{"png", pngFiles},
	{"jpeg", jpegFiles},
}

var catalogIndex = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, c := range catalog {
		m[c.Name] = i
	}
	return m
}()

// Categories returns a copy of the built-in catalog in listing order.
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		out[i] = Category{Name: c.Name, Filter: c.Filter.clone()}
	}

	return out
}

// Lookup returns the built-in filter registered under name.
func Lookup(name string) (Filter, bool) {
	i, ok := catalogIndex[name]
	if !ok {
		return Filter{}, false
	}

	return catalog[i].Filter.clone(), true
}

// Match returns every built-in category accepting the file name.
func Match(name string) []Category {
	var out []Category
	for _, c := range catalog {
		if c.Filter.Matches(name) {
			out = append(out, Category{Name: c.Name, Filter: c.Filter.clone()})
		}
	}

	return out
}

// AllFilesWildcard returns the filter matching every file.
func AllFilesWildcard() string {
	return lang.L("All files (*)|*")
}

// Schematic and board files.

func SchematicSymbolFileWildcard() string  { return schematicSymbolFiles.Wildcard() }
func SchematicLibraryFileWildcard() string { return schematicLibraryFiles.Wildcard() }
func ProjectFileWildcard() string          { return projectFiles.Wildcard() }
func SchematicFileWildcard() string        { return schematicFiles.Wildcard() }
func EagleSchematicFileWildcard() string   { return eagleSchematicFiles.Wildcard() }
func EagleFilesWildcard() string           { return eagleFiles.Wildcard() }
func NetlistFileWildcard() string          { return netlistFiles.Wildcard() }
func GerberFileWildcard() string           { return gerberFiles.Wildcard() }
func LegacyPcbFileWildcard() string        { return legacyPcbFiles.Wildcard() }
func EaglePcbFileWildcard() string         { return eaglePcbFiles.Wildcard() }
func PCadPcbFileWildcard() string          { return pcadPcbFiles.Wildcard() }
func PcbFileWildcard() string              { return pcbFiles.Wildcard() }

// Footprints, libraries and page layouts.

func KiCadFootprintLibFileWildcard() string   { return footprintFiles.Wildcard() }
func KiCadFootprintLibPathWildcard() string   { return footprintLibPaths.Wildcard() }
func LegacyFootprintLibPathWildcard() string  { return legacyFootprintLibs.Wildcard() }
func EagleFootprintLibPathWildcard() string   { return eagleFootprintLibs.Wildcard() }
func GedaPcbFootprintLibFileWildcard() string { return gedaFootprintLibs.Wildcard() }
func PageLayoutDescrFileWildcard() string     { return pageLayoutFiles.Wildcard() }

// ComponentFileWildcard returns the filter of the symbol to footprint link files.
func ComponentFileWildcard() string { return componentFiles.Wildcard() }

// Reports and fabrication documents.

func DrillFileWildcard() string          { return drillFiles.Wildcard() }
func SVGFileWildcard() string            { return svgFiles.Wildcard() }
func HtmlFileWildcard() string           { return htmlFiles.Wildcard() }
func CsvFileWildcard() string            { return csvFiles.Wildcard() }
func PdfFileWildcard() string            { return pdfFiles.Wildcard() }
func PSFileWildcard() string             { return psFiles.Wildcard() }
func ReportFileWildcard() string         { return reportFiles.Wildcard() }
func FootprintPlaceFileWildcard() string { return footprintPlaceFiles.Wildcard() }

// 3D models, simulation, exchange and image files.

func Shapes3DFileWildcard() string        { return shapes3DFiles.Wildcard() }
func IDF3DFileWildcard() string           { return idf3DFiles.Wildcard() }
func TextFileWildcard() string            { return textFiles.Wildcard() }
func ModLegacyExportFileWildcard() string { return legacyFootprintExports.Wildcard() }
func ErcFileWildcard() string             { return ercFiles.Wildcard() }
func SpiceLibraryFileWildcard() string    { return spiceLibraryFiles.Wildcard() }
func SpiceNetlistFileWildcard() string    { return spiceNetlistFiles.Wildcard() }
func CadstarNetlistFileWildcard() string  { return cadstarNetlistFiles.Wildcard() }
func EquFileWildcard() string             { return equFiles.Wildcard() }
func ZipFileWildcard() string             { return zipFiles.Wildcard() }
func GencadFileWildcard() string          { return gencadFiles.Wildcard() }
func DxfFileWildcard() string             { return dxfFiles.Wildcard() }
func GerberJobFileWildcard() string       { return gerberJobFiles.Wildcard() }
func SpecctraDsnFileWildcard() string     { return specctraDsnFiles.Wildcard() }
func IpcD356FileWildcard() string         { return ipcD356Files.Wildcard() }
func WorkbookFileWildcard() string        { return workbookFiles.Wildcard() }
func PngFileWildcard() string             { return pngFiles.Wildcard() }
func JpegFileWildcard() string            { return jpegFiles.Wildcard() }
