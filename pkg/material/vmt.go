package material

import "fmt"

// BaseTexture is the texture path every generated VMT references; the
// actual pixels come from the shared placeholder VTF.
const BaseTexture = "pathprop/pathprop"

// VMT renders the material description block for m. The tint uses the
// full-precision channels; the name carries the quantized encoding.
func (m Material) VMT() string {
	return fmt.Sprintf(`"UnlitGeneric"
{
	"$basetexture" "%s"
	"$model" "1"
	"$color2" "[%.6f %.6f %.6f]"
}
`, BaseTexture, m.Color.R, m.Color.G, m.Color.B)
}
