/*
Package foo implements Foo, a small stack-oriented language in the Forth
tradition: words are looked up in a dictionary and either run immediately or,
inside a colon definition, compiled into a new word's body. Foo keeps two
value stacks, one of signed integers and one of doubles, rather than Forth's
single cell-typed stack, and represents a program as a literal source string
walked by a cursor rather than as compiled machine-like cells: control words
such as if/else/then and begin/until work by moving that cursor around
directly instead of branching through compiled offsets.

A Foo program is a sequence of lines. A line starting with `:` defines a
word; one starting with `#` imports a module (`# geometry` loads
geometry.foo); anything else is evaluated immediately against the current
stacks. See Interp, Compile, Import, and Eval.
*/
package foo
