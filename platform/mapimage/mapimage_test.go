package mapimage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSVGEmptyPointsStillProducesValidDocument(t *testing.T) {
	svg := BuildSVG(nil, nil)
	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.True(t, strings.HasSuffix(svg, "</svg>"))
}

func TestBuildSVGPlacesMarkerPerPoint(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0, Stars: 3, Label: "Pikachu"},
		{X: 10, Y: 10, Stars: 6, Label: "Charizard"},
	}
	svg := BuildSVG(points, nil)
	require.Equal(t, 2, strings.Count(svg, "<circle"))
	require.Contains(t, svg, "Pikachu")
	require.Contains(t, svg, "Charizard")
}

func TestRenderPNGProducesNonEmptyImage(t *testing.T) {
	points := []Point{{X: 0, Y: 0, Stars: 1}, {X: 5, Y: 5, Stars: 4}}
	img, err := RenderPNG(points, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, DefaultOptions().Width, img.Bounds().Dx())
	require.Equal(t, DefaultOptions().Height, img.Bounds().Dy())
}

func TestColorForStarsFallsBackOutOfRange(t *testing.T) {
	require.Equal(t, starColors[0], colorForStars(0))
	require.Equal(t, starColors[0], colorForStars(99))
	require.Equal(t, starColors[5], colorForStars(6))
}
