/*
Package symset implements an insertion-ordered set of grammar symbols.

Set is a special purpose container, suitable mainly for implementing
algorithms around grammar graphs. Iteration order is part of the
observable contract: entry points, exit points and successor lists of a
symbol graph are enumerated in the order symbols were first added, and
equality compares order, not just membership.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 Martin Kestner

*/
package symset
