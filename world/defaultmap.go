package world

// DefaultMap is the built-in arena: a joining loft above the start barrier,
// five gates mirrored across the center, a berry field over the middle
// platform, bases and the ship track on the arena floor.
const DefaultMap = `################################################
................................................
................................................
......11................................22......
................................................
.........GG..........................GG.........
TTTTTTTT####TTTTTTTTTT####TTTTTTTTTT####TTTTTTTT
................................................
................................................
....####................................####....
................................................
................................................
...............*******.GG.*******...............
..................############..................
................................................
......####............................####......
................................................
..................####....####..................
................................................
.....GG..................................GG.....
....####................................####....
................................................
................................................
................................................
................................................
..AAAAAA...............S................BBBBBB..
################################################`
