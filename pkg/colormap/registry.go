package colormap

import(
	"sort"

	"github.com/abworrall/imgplot/pkg/errs"
)

const DefaultName = "viridis"

var(
	// Registry holds the continuous colormaps, plus an "_r" reversed
	// variant of each. Filled in once by init, read-only after that.
	Registry = map[string]Colormap{}

	// Qualitative holds the discrete named palettes.
	Qualitative = map[string]Colormap{}
)

func init() {
	for _, cm := range []Colormap{
		NewLinear("gray", "#000000", "#ffffff"),
		NewLinear("viridis", "#440154", "#482374", "#404387", "#345e8d", "#29788e",
			"#20908c", "#22a784", "#44be70", "#79d151", "#bdde26", "#fde725"),
		NewLinear("plasma", "#0d0887", "#4b03a1", "#7d03a8", "#a82296", "#cb4679",
			"#e56b5d", "#f89441", "#fdc328", "#f0f921"),
		NewLinear("inferno", "#000004", "#280b54", "#65156e", "#9f2a63", "#d44842",
			"#f57d15", "#fac127", "#fcffa4"),
		NewLinear("magma", "#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
			"#e55064", "#fb8761", "#fec287", "#fcfdbf"),
		NewLinear("cividis", "#00224e", "#123570", "#3b496c", "#575d6d", "#707173",
			"#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"),
		NewLinear("YlGnBu", "#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4",
			"#1d91c0", "#225ea8", "#253494", "#081d58"),
		NewLinear("ice", "#040613", "#292851", "#3f4b96", "#427bb7", "#61a8c7",
			"#9cd4da", "#eafdfd"),
		NewLinear("Reds", "#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
			"#ef3b2c", "#cb181d", "#a50f15", "#67000d"),
		NewLinear("Greens", "#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476",
			"#41ab5d", "#238b45", "#006d2c", "#00441b"),
		NewLinear("Blues", "#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
			"#4292c6", "#2171b5", "#08519c", "#08306b"),
		NewLinear("acton", "#260d40", "#5a3e6e", "#905b8c", "#c36d98", "#d890b3",
			"#e2b6d0", "#e6e6f0"),
	} {
		Registry[cm.Name()] = cm
		Registry[cm.Name()+"_r"] = Reverse(cm)
	}

	// Seaborn's palettes
	for _, cm := range []Colormap{
		NewListed("deep", "#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
			"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd"),
		NewListed("muted", "#4878d0", "#ee854a", "#6acc64", "#d65f5f", "#956cb4",
			"#8c613c", "#dc7ec0", "#797979", "#d5bb67", "#82c6e2"),
		NewListed("pastel", "#a1c9f4", "#ffb482", "#8de5a1", "#ff9f9b", "#d0bbff",
			"#debb9b", "#fab0e4", "#cfcfcf", "#fffea3", "#b9f2f0"),
		NewListed("bright", "#023eff", "#ff7c00", "#1ac938", "#e8000b", "#8b2be2",
			"#9f4800", "#f14cc1", "#a3a3a3", "#ffc400", "#00d7ff"),
		NewListed("dark", "#001c7f", "#b1400d", "#12711c", "#8c0800", "#591e71",
			"#592f0d", "#a23582", "#3c3c3c", "#b8850a", "#006374"),
		NewListed("colorblind", "#0173b2", "#de8f05", "#029e73", "#d55e00", "#cc78bc",
			"#ca9161", "#fbafe4", "#949494", "#ece133", "#56b4e9"),
	} {
		Qualitative[cm.Name()] = cm
	}
}

func Default() Colormap { return Registry[DefaultName] }

// Get looks a name up, qualitative palettes first.
func Get(name string) (Colormap, error) {
	if cm, exists := Qualitative[name]; exists {
		return cm, nil
	}
	if cm, exists := Registry[name]; exists {
		return cm, nil
	}
	return nil, errs.Valuef("no colormap named '%s', wanted one of %v", name, Names())
}

// Resolve picks the colormap to draw with: an explicit colormap object wins,
// then a named one, then the default.
func Resolve(name string, cm Colormap) (Colormap, error) {
	if cm != nil {
		return cm, nil
	}
	if name == "" {
		return Default(), nil
	}
	return Get(name)
}

func Names() []string {
	names := []string{}
	for n := range Qualitative {
		names = append(names, n)
	}
	for n := range Registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
