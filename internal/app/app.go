package app

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/config"
	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/internal/store"
	"go.uber.org/zap"
)

// Options configures the editor
type Options struct {
	// ProjectPath is the project file to open and save, optional
	ProjectPath string
	// TerrainPath is an STL model shown under the roads, optional
	TerrainPath string
	Config      config.Config
	Logger      *zap.Logger
}

type App struct {
	Camera      CameraState
	Terrain     TerrainData
	View        ViewSettings
	Interaction InteractionState
	Host        HostState
	UI          UIState

	cfg   config.Config
	log   *zap.Logger
	scene *scene.Scene
	tool  *placement.Tool
	store *store.Store
}

// New prepares the scene, the tool and the project. The window is not opened.
func New(opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := &App{
		cfg:   opts.Config,
		log:   log.Named("editor"),
		scene: scene.New(),
		View: ViewSettings{
			showFilled: true,
			showGrid:   true,
			showHelp:   true,
		},
	}

	toolOpts := opts.Config.ToolOptions()
	toolOpts.Logger = log
	app.tool = placement.NewTool(app, app.scene, app.scene, toolOpts)

	if opts.ProjectPath != "" {
		if err := app.openProject(opts.ProjectPath); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Close ends a running tool and releases the project file
func (app *App) Close() error {
	app.tool.Close()
	if app.store != nil {
		return app.store.Close()
	}
	return nil
}

// Run opens the editor window and blocks until it is closed
func Run(opts Options) (err error) {
	app, err := New(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, app.Close()) }()

	editor := opts.Config.Editor
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(editor.Width), int32(editor.Height), "goroad")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(editor.FPS))
	// ESC belongs to the road tool
	rl.SetExitKey(0)

	if opts.TerrainPath != "" {
		if err := app.loadTerrain(opts.TerrainPath); err != nil {
			return err
		}
		defer rl.UnloadMesh(&app.Terrain.mesh)
	}

	distance := float32(editor.CameraDistance)
	app.Camera.distance = distance
	app.Camera.angleX = 0.8
	app.Camera.angleY = 0.3
	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 0.8
	app.Camera.defaultAngleY = 0.3
	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: distance, Z: distance},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		app.updateCamera()
		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	if app.UI.dirty {
		app.log.Warn("unsaved changes discarded")
	}
	return nil
}
