/*
Package argroute routes command line arguments to handlers by matching them against declared command shapes, prompting for anything missing.

The routing itself lives in the route package.
The prompt package supplies a terminal based route.Asker, and cli, env, and slogx hold the flag, environment, and logging setup shared by routing binaries.
See cmd/argroute-sample for a complete program.
*/
package argroute
