package assets

import (
	"embed"
	"fmt"
	"log"
	"path"

	"github.com/automoto/rockclimber/shared/walldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:walls
	wallFS embed.FS
)

// StartWall is the map every session climbs.
const StartWall = "start"

// Wall is a loaded wall map: its seed layout and a pre-rendered backdrop.
type Wall struct {
	*walldata.WallData
	Background *ebiten.Image // nil when no layer is marked for rendering
}

// LoadWall loads walls/<name>.tmx from the embedded assets.
func LoadWall(name string) (*Wall, error) {
	wallPath := path.Join("walls", name+".tmx")
	wallMap, err := tiled.LoadFile(wallPath, tiled.WithFileSystem(wallFS))
	if err != nil {
		return nil, fmt.Errorf("assets: load wall %s: %w", wallPath, err)
	}

	data, err := walldata.FromMap(wallMap, wallPath)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	wall := &Wall{WallData: data}
	wall.Background = renderBackground(wallMap)
	return wall, nil
}

// renderBackground draws every tile layer carrying the "render" property.
// A broken layer is logged and skipped; the wall still plays without it.
func renderBackground(wallMap *tiled.Map) *ebiten.Image {
	renderer, err := render.NewRendererWithFileSystem(wallMap, wallFS)
	if err != nil {
		log.Printf("Warning: Failed to create wall renderer: %v", err)
		return nil
	}

	var bg *ebiten.Image
	for i, layer := range wallMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render wall layer %s: %v", layer.Name, err)
			continue
		}
		opacity := layer.Opacity
		if opacity <= 0 {
			renderer.Clear()
			continue
		}
		if bg == nil {
			bg = ebiten.NewImage(wallMap.Width*wallMap.TileWidth, wallMap.Height*wallMap.TileHeight)
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg
}
