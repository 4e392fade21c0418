package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"tilechip/bank"
	"tilechip/demo"
	"tilechip/tile"
	"tilechip/videochip"
)

const scrollSpeed = 2

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

type Game struct {
	scene       *demo.Scene
	scale       int
	frame       *image.RGBA
	gameScreen  *ebiten.Image
	defaultFont font.Face
	paused      bool
}

var scrollKeys = map[ebiten.Key][2]int16{
	ebiten.KeyUp:    {0, -scrollSpeed},
	ebiten.KeyDown:  {0, scrollSpeed},
	ebiten.KeyLeft:  {-scrollSpeed, 0},
	ebiten.KeyRight: {scrollSpeed, 0},
}

func (g *Game) Update() error {
	for k, d := range scrollKeys {
		if ebiten.IsKeyPressed(k) {
			g.scene.Scroll(d[0], d[1])
		}
	}

	chip := g.scene.Chip
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		chip.WrapSprites = !chip.WrapSprites
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		chip.WrapBG = !chip.WrapBG
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.scene.SetIRQ(!g.scene.IRQ())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
	}

	if !g.paused {
		g.scene.Step()
	}
	return nil
}

func (g *Game) getDefaultFont() font.Face {
	if g.defaultFont != nil {
		return g.defaultFont
	}
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	mplusNormalFont, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    12,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	g.defaultFont = mplusNormalFont
	return g.defaultFont
}

var (
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GREEN = color.RGBA{G: 0xFF, A: 0xFF}
	RED   = color.RGBA{R: 0xFF, A: 0xFF}
)

func (g *Game) DrawString(screen *ebiten.Image, x int, y int, str string, clr color.Color) {
	text.Draw(screen, str, g.getDefaultFont(), x, y, clr)
}

func onOff(b bool) color.Color {
	if b {
		return GREEN
	}
	return RED
}

func (g *Game) DrawStatus(screen *ebiten.Image, x, y int) {
	chip := g.scene.Chip
	g.DrawString(screen, x, y, fmt.Sprintf("frame %d  scroll %d,%d  sprites %d",
		chip.FrameCount(), chip.ScrollX, chip.ScrollY, chip.Sprites().Len()), WHITE)

	y += 16
	g.DrawString(screen, x, y, "WRAP SPR", onOff(chip.WrapSprites))
	g.DrawString(screen, x+80, y, "WRAP BG", onOff(chip.WrapBG))
	g.DrawString(screen, x+150, y, "IRQ", onOff(g.scene.IRQ()))
	g.DrawString(screen, x+190, y, "OVERFLOW", onOff(chip.SpriteOverflow()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Render(g.frame)
	g.gameScreen.WritePixels(g.frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.gameScreen, op)

	g.DrawStatus(screen, 4, 14)
	_, h := g.Layout(0, 0)
	ebitenutil.DebugPrintAt(screen, "arrows scroll  W/B wrap  I irq  R reset  SPACE pause", 4, h-16)
}

func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	chip := g.scene.Chip
	return int(chip.Width()) * g.scale, int(chip.Height()) * g.scale
}

func newGame(scene *demo.Scene, scale int) *Game {
	w, h := int(scene.Chip.Width()), int(scene.Chip.Height())
	return &Game{
		scene:      scene,
		scale:      scale,
		frame:      image.NewRGBA(image.Rect(0, 0, w, h)),
		gameScreen: ebiten.NewImage(w, h),
	}
}

func run(c *cli.Context) error {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	scale := c.Int("scale")
	if scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", scale)
	}
	width, height := c.Uint("width"), c.Uint("height")
	if width == 0 || width > 0xFFFF || height < tile.Size || height > videochip.MaxLines {
		return fmt.Errorf("screen must be 1..65535 by %d..%d pixels, got %dx%d", tile.Size, videochip.MaxLines, width, height)
	}

	opts := demo.Options{
		Width:  uint16(width),
		Height: uint16(height),
		Logger: logger,
	}
	if path := c.String("palette"); path != "" {
		p, err := demo.LoadPalette(path)
		if err != nil {
			return err
		}
		opts.Palette = &p
	}
	if path := c.String("tiles"); path != "" {
		tiles, colors, err := bank.Load(path)
		if err != nil {
			return err
		}
		logger.Printf("imported %d tiles from %s", len(tiles), path)
		opts.Tiles, opts.TileColors = tiles, colors
	}

	scene := demo.NewScene(opts)
	if path := c.String("screenshot"); path != "" {
		return scene.Screenshot(path, c.Int("frames"), scale)
	}

	g := newGame(scene, scale)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tilechip")
	return ebiten.RunGame(g)
}

func main() {
	app := cli.NewApp()

	app.Name = "tilechip"
	app.Usage = "Tile and sprite video chip demo"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "scale",
			EnvVars: []string{"TILECHIP_SCALE"},
			Value:   3,
			Usage:   "window and screenshot scale factor",
		},
		&cli.UintFlag{
			Name:  "width",
			Value: 256,
			Usage: "screen width in pixels",
		},
		&cli.UintFlag{
			Name:  "height",
			Value: 192,
			Usage: "screen height in pixels",
		},
		&cli.StringFlag{
			Name:    "palette",
			EnvVars: []string{"TILECHIP_PALETTE"},
			Usage:   "JSON file of [r, g, b] triples for the global palettes",
		},
		&cli.StringFlag{
			Name:  "tiles",
			Usage: "image to import as extra tiles",
		},
		&cli.StringFlag{
			Name:  "screenshot",
			Usage: "render headlessly and write the last frame to this PNG",
		},
		&cli.IntFlag{
			Name:  "frames",
			Value: 60,
			Usage: "frames to run before taking a screenshot",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if err := run(c); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
