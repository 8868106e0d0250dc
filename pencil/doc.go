// Package pencil models a graphite pencil that writes text under a durability
// budget, can be sharpened to restore that budget, and can erase words.
//
// # Writing
//
// Every character written costs point durability:
//
//	p := pencil.New(10)
//	p.Write("a")          // Text() == "a", Durability() == 9
//	p.Write("A")          // Durability() == 7
//
// Lowercase ASCII letters cost 1, uppercase ASCII letters cost 2, and spaces
// and newlines are free. Everything else (digits, punctuation) is written at
// no cost. Once durability reaches zero the pencil keeps writing, but every
// character that is not a space or newline is recorded as a space.
//
// # Sharpening
//
// Sharpening restores durability to its initial value and shortens the pencil
// by one. A pencil of length zero cannot be sharpened:
//
//	p := pencil.New(10, pencil.WithLength(3))
//	p.Write("hello")      // Durability() == 5
//	p.Sharpen()           // Durability() == 10, Length() == 2
//
// # Erasing and Editing
//
// Erase blanks the last occurrence of a word, working from its last character
// towards its first and spending one unit of eraser durability per character.
// An eraser without a configured durability never wears out:
//
//	p := pencil.New(10, pencil.WithLength(2), pencil.WithEraserDurability(3))
//	p.Write("erase me")
//	p.Erase("me")         // Text() == "erase   ", EraserDurability() == 1
//
// Edit writes new text into the gap left by the most recent erase. Where a
// new character lands on one that is still there, the position becomes '@':
//
//	p.Edit("us")          // Text() == "erase us"
//
// # Errors
//
// Nothing in this package returns an error. Exhausted budgets degrade the
// output (blank characters, partial erasures) and unmatched words are ignored.
//
// A Pencil is not safe for concurrent use.
package pencil
