package layout

// Geological convention colors for stratigraphy layers, shallow to deep.
var layerPalette = []string{
	"#F5F5DC", // beige
	"#DEB887", // burlywood
	"#D2B48C", // tan
	"#BC8F8F", // rosy brown
	"#F4A460", // sandy brown
	"#CD853F", // peru
	"#D2691E", // chocolate
	"#A0522D", // sienna
	"#8B4513", // saddle brown
	"#696969", // dim gray
	"#778899", // light slate gray
	"#708090", // slate gray
	"#2F4F4F", // dark slate gray
	"#B0C4DE", // light steel blue
	"#87CEEB", // sky blue
	"#87CEFA", // light sky blue
	"#ADD8E6", // light blue
	"#E0FFFF", // light cyan
	"#F0FFFF", // azure
	"#F8F8FF", // ghost white
}

// Casing string colors. Black, red and blue are reserved for the borehole
// walls, the centerline and the kickoff marker.
var casingPalette = []string{
	"#228B22", // forest green
	"#FF8C00", // dark orange
	"#8B008B", // dark magenta
	"#20B2AA", // light sea green
	"#FF1493", // deep pink
	"#32CD32", // lime green
	"#FF4500", // orange red
	"#9370DB", // medium purple
	"#00CED1", // dark turquoise
}

func layerColors(n int) []string  { return cycle(layerPalette, n) }
func casingColors(n int) []string { return cycle(casingPalette, n) }

// cycle returns n colors, wrapping around when the palette is shorter.
func cycle(palette []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
