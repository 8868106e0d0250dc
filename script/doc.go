// Package script runs a sequence of pencil operations described in YAML,
// TOML or one-line console commands.
//
// A YAML script:
//
//	pencil:
//	  durability: 10
//	  length: 3
//	  eraser_durability: 5
//	steps:
//	  - op: write
//	    text: Hello World
//	  - op: erase
//	    text: World
//	  - op: sharpen
//	  - op: edit
//	    text: Mars
//
// The same steps as console lines:
//
//	write Hello World
//	erase World
//	sharpen
//	edit Mars
//
// Text may be quoted to carry escapes or surrounding spaces:
//
//	write "first line\nsecond line"
//
// Running a script:
//
//	s, err := script.Load("demo.yaml")
//	if err != nil {
//	    return err
//	}
//	res, err := script.NewRunner(script.WithLogger(logger)).Run(ctx, s)
//	fmt.Println(res.State.Text)
//
// Without a pencil section the script runs against config.DefaultConfig.
package script
