package lottie

// CompositionProps holds the root document properties.
var CompositionProps = struct {
	FrameRate, Height, InPoint, Is3D, Name, OutPoint, Version, Width Prop
	Assets, Layers, Markers, Meta                                   Prop
}{
	FrameRate: Prop{Name: "frameRate", Key: "fr"},
	Height:    Prop{Name: "height", Key: "h"},
	InPoint:   Prop{Name: "inPoint", Key: "ip"},
	Is3D:      Prop{Name: "is3D", Key: "ddd"},
	Name:      Prop{Name: "name", Key: "nm"},
	OutPoint:  Prop{Name: "outPoint", Key: "op"},
	Version:   Prop{Name: "version", Key: "v"},
	Width:     Prop{Name: "width", Key: "w"},
	Assets:    Prop{Name: "assets", Key: "assets", Wrapped: true},
	Layers:    Prop{Name: "layers", Key: "layers", Wrapped: true},
	Markers:   Prop{Name: "markers", Key: "markers", Wrapped: true},
	Meta:      Prop{Name: "meta", Key: "meta", Wrapped: true},
}

// LayerProps holds the properties shared by every layer type.
var LayerProps = struct {
	Type, AutoOrient, BlendMode, ClassNames, Effects, Height, ID, Index Prop
	RefID, InPoint, Is3D, Name, OutPoint, StartTime, TimeStretch, Width Prop
	MatteMode, MatteTarget, IsHidden, MatchName, Transform, Parent      Prop
}{
	Type:        Prop{Name: "type", Key: "ty"},
	AutoOrient:  Prop{Name: "autoOrient", Key: "ao"},
	BlendMode:   Prop{Name: "blendMode", Key: "bm"},
	ClassNames:  Prop{Name: "classNames", Key: "cl"},
	Effects:     Prop{Name: "effects", Key: "ef"},
	Height:      Prop{Name: "height", Key: "h"},
	ID:          Prop{Name: "id", Key: "ln"},
	Index:       Prop{Name: "index", Key: "ind"},
	RefID:       Prop{Name: "refId", Key: "refId"},
	InPoint:     Prop{Name: "inPoint", Key: "ip"},
	Is3D:        Prop{Name: "is3D", Key: "ddd"},
	Name:        Prop{Name: "name", Key: "nm"},
	OutPoint:    Prop{Name: "outPoint", Key: "op"},
	StartTime:   Prop{Name: "startTime", Key: "st"},
	TimeStretch: Prop{Name: "timeStretch", Key: "sr"},
	Width:       Prop{Name: "width", Key: "w"},
	MatteMode:   Prop{Name: "matteMode", Key: "tt"},
	MatteTarget: Prop{Name: "matteTarget", Key: "td"},
	IsHidden:    Prop{Name: "isHidden", Key: "hd"},
	MatchName:   Prop{Name: "matchName", Key: "mn"},
	Transform:   Prop{Name: "transform", Key: "ks"},
	Parent:      Prop{Name: "parent", Key: "parent"},
}

// Variant specific layer properties.
var (
	PrecompositionProps = struct{ TimeRemap Prop }{
		TimeRemap: Prop{Name: "timeRemap", Key: "tm"},
	}
	ShapeProps = struct{ Shapes Prop }{
		Shapes: Prop{Name: "shapes", Key: "shapes"},
	}
	SolidProps = struct{ Color, Height, Width Prop }{
		Color:  Prop{Name: "solidColor", Key: "sc"},
		Height: Prop{Name: "solidHeight", Key: "sh"},
		Width:  Prop{Name: "solidWidth", Key: "sw"},
	}
	TextProps = struct{ TextData Prop }{
		TextData: Prop{Name: "textData", Key: "t"},
	}
)

// AssetProps holds asset properties. Nested layers are raw fragments and are
// not wrapped.
var AssetProps = struct {
	ID, Layers, Width, Height, Directory, File, Embedded Prop
}{
	ID:        Prop{Name: "id", Key: "id"},
	Layers:    Prop{Name: "layers", Key: "layers"},
	Width:     Prop{Name: "width", Key: "w"},
	Height:    Prop{Name: "height", Key: "h"},
	Directory: Prop{Name: "directory", Key: "u"},
	File:      Prop{Name: "file", Key: "p"},
	Embedded:  Prop{Name: "embedded", Key: "e"},
}

var (
	compositionPropMap = NewPropertyMap(
		CompositionProps.FrameRate, CompositionProps.Height, CompositionProps.InPoint,
		CompositionProps.Is3D, CompositionProps.Name, CompositionProps.OutPoint,
		CompositionProps.Version, CompositionProps.Width,
		CompositionProps.Assets, CompositionProps.Layers, CompositionProps.Markers, CompositionProps.Meta,
	)

	layerPropMap = NewPropertyMap(
		LayerProps.Type, LayerProps.AutoOrient, LayerProps.BlendMode, LayerProps.ClassNames,
		LayerProps.Effects, LayerProps.Height, LayerProps.ID, LayerProps.Index,
		LayerProps.RefID, LayerProps.InPoint, LayerProps.Is3D, LayerProps.Name,
		LayerProps.OutPoint, LayerProps.StartTime, LayerProps.TimeStretch, LayerProps.Width,
		LayerProps.MatteMode, LayerProps.MatteTarget, LayerProps.IsHidden, LayerProps.MatchName,
		LayerProps.Transform, LayerProps.Parent,
	)
	precompositionPropMap = layerPropMap.Extend(PrecompositionProps.TimeRemap)
	shapePropMap          = layerPropMap.Extend(ShapeProps.Shapes)
	solidPropMap          = layerPropMap.Extend(SolidProps.Color, SolidProps.Height, SolidProps.Width)
	textPropMap           = layerPropMap.Extend(TextProps.TextData)

	assetPropMap = NewPropertyMap(
		AssetProps.ID, AssetProps.Layers, AssetProps.Width, AssetProps.Height,
		AssetProps.Directory, AssetProps.File, AssetProps.Embedded,
	)
	markerPropMap = NewPropertyMap(
		Prop{Name: "comment", Key: "cm"},
		Prop{Name: "time", Key: "tm"},
		Prop{Name: "duration", Key: "dr"},
	)
	metaPropMap = NewPropertyMap(
		Prop{Name: "generator", Key: "g"},
		Prop{Name: "author", Key: "a"},
		Prop{Name: "keywords", Key: "k"},
		Prop{Name: "description", Key: "d"},
		Prop{Name: "themeColor", Key: "tc"},
	)
)
