// Package pencilkit models a graphite pencil: writing under a durability
// budget, sharpening, erasing and editing.
//
// Each subpackage can be used independently:
//
//   - pencil: the Pencil type and its write, erase, sharpen and edit operations
//   - config: pencil parameters from files (YAML, TOML, JSON) and PENCIL_ env vars
//   - script: sequences of pencil operations, parsed and run with logging
//
// # Quick Start
//
// Writing:
//
//	import "github.com/randalmurphal/pencilkit/pencil"
//	p := pencil.New(10, pencil.WithLength(3), pencil.WithEraserDurability(5))
//	p.Write("Hello World")
//	p.Erase("World")
//	p.Sharpen()
//	p.Edit("Mars")
//	fmt.Println(p.Text())
//
// From a config file:
//
//	import "github.com/randalmurphal/pencilkit/config"
//	cfg, _ := config.Load("pencil.yaml")
//	p := cfg.NewPencil()
//
// Scripts:
//
//	import "github.com/randalmurphal/pencilkit/script"
//	res, _ := script.NewRunner().Run(ctx, script.Demo())
//	fmt.Println(res.State.Text)
//
// The cmd/pencil-demo command runs the demo, script files, and an
// interactive console.
package pencilkit
