package lottie_test

import (
	"fmt"
	"log"

	"github.com/lottiebuilder/lottie-go"
	"github.com/lottiebuilder/lottie-go/keypath"
	"github.com/lottiebuilder/lottie-go/lottiejson"
)

func ExampleParse() {
	data := []byte(`{
		"v": "5.7.4", "fr": 30, "ip": 0, "op": 60, "w": 512, "h": 512,
		"nm": "Loader",
		"layers": [
			{"ty": 4, "nm": "Spinner", "ind": 0, "ks": {"r": {"a": 0, "k": 45}}},
			{"ty": 1, "nm": "Background", "ind": 1, "sc": "#ffffff", "sw": 512, "sh": 512}
		]
	}`)

	comp, err := lottie.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(comp.Name(), comp.Width(), comp.Height())
	for _, l := range comp.Layers() {
		fmt.Println(l.Index(), l.Type(), l.Name())
	}
	fmt.Println(comp.GetLayer("Spinner").Rotation())
	// Output:
	// Loader 512 512
	// 0 shape Spinner
	// 1 solid Background
	// 45
}

func ExampleComposition_AddTextLayer() {
	comp, _ := lottie.Parse([]byte(`{"w": 200, "h": 100, "ip": 0, "op": 30, "layers": []}`))

	title := comp.AddTextLayer("Title", lottie.TextOptions{Text: "Hello"}, lottie.TransformOptions{}, 0)
	fmt.Println(title.Text(), title.Position())

	title.SetText("Goodbye")
	fmt.Println(title.Text())
	// Output:
	// Hello {100 50}
	// Goodbye
}

func ExampleComposition_AddLottieLayer() {
	comp, _ := lottie.Parse([]byte(`{"w": 400, "h": 400, "layers": []}`),
		lottie.WithIDGenerator(lottie.SequenceGenerator()))

	badge, _ := lottiejson.DecodeObject([]byte(`{
		"w": 64, "h": 64,
		"assets": [{"id": "image_0", "p": "badge.png"}],
		"layers": [{"ty": 2, "nm": "Badge", "refId": "image_0"}]
	}`))

	first, _ := comp.AddLottieLayer("Badge", badge, lottie.TransformOptions{}, 0)
	second, _ := comp.AddLottieLayer("Badge", badge, lottie.TransformOptions{}, 1)

	fmt.Println(first.Name(), first.RefID())
	fmt.Println(second.Name(), second.RefID())
	fmt.Println(len(comp.Assets()), "assets")
	// Output:
	// Badge comp_1
	// Badge_3 comp_1
	// 2 assets
}

func ExampleComposition_OnSourceChange() {
	comp, _ := lottie.Parse([]byte(`{"layers": [{"ty": 3, "nm": "A", "ind": 0}, {"ty": 3, "nm": "B", "ind": 1}]}`))

	comp.OnSourceChange(func() {
		fmt.Println("reload")
	})
	comp.SetLayerIndex(comp.GetLayer("B"), 0)
	comp.GetLayer("A").SetOpacity(50)
	// Output:
	// reload
	// reload
}

func ExampleComposition_Export() {
	comp, _ := lottie.Parse([]byte(`{
		"assets": [{"id": "img", "p": "a.png"}],
		"layers": [
			{"ty": 2, "nm": "Hidden", "ind": 0, "refId": "img", "hd": true},
			{"ty": 3, "nm": "Visible", "ind": 1}
		]
	}`))

	doc, _ := comp.Export()
	out, _ := lottiejson.Marshal(doc)
	fmt.Println(string(out))
	fmt.Println(len(comp.Layers()), "layers still in the composition")
	// Output:
	// {"assets":[],"layers":[{"ind":0,"nm":"Visible","ty":3}]}
	// 2 layers still in the composition
}

func ExampleComposition_Validate() {
	comp, _ := lottie.Parse([]byte(`{
		"v": "5.7.4",
		"layers": [{"ty": 0, "nm": "Pre", "ind": 0, "refId": "missing"}]
	}`))

	fmt.Println(comp.Validate())
	// Output: invalid composition: layers[0].refId: references unknown asset "missing"
}

func ExampleParseColor() {
	c, _ := lottie.ParseColor("#f80")
	fmt.Printf("%.2f %.2f %.2f %.2f\n", c.R, c.G, c.B, c.A)
	fmt.Println(c.Hex())
	// Output:
	// 1.00 0.53 0.00 1.00
	// #ff8800
}

func Example_keypath() {
	fmt.Println(keypath.Transform("Star", keypath.Position))
	fmt.Println(keypath.ShapeColor("Star", "Fill 1"))
	// Output:
	// Star.Transform.Position
	// Star.**.Fill 1.Color
}
