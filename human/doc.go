// Package human converts between dense text and the indented human form.
//
// The human form of
//
//	c.task:Our favorite hikes together^loc:Boulder
//	f>ana|luis
//	h=id%# n%s sun%b
//	Blue Lake Trail +
//
// under Compact is
//
//	c:
//	  task: Our favorite hikes together
//	  loc: Boulder
//
//	f: !array
//	  - ana
//	  - luis
//
//	h: !table(id:autoinc n:string sun:bool)
//	  - id: 1
//	    n: Blue Lake Trail
//	    sun: true
//
// Root record fields are written as top level key: value lines. With box
// drawing the rows of a table become a grid whose first row names the
// columns. Auto-increment values are shown but ignored on read.
//
// Config values are immutable; presets are Default, ASCII and Compact.
package human
