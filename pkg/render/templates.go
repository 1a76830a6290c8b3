package render

// Metal template arguments:
//
//	[1] name  [2] width  [3] width prefix  [4] length  [5] length prefix
//	[6] resistance  [7] resistance prefix
var metalTemplates = map[Style]string{
	{ModeLine, CharsetASCII}:   "%[1]s (%.1[2]f %[3]sm / %.1[4]f%[5]sm) = %.1[6]f %[7]sOhm\n",
	{ModeLine, CharsetUnicode}: "%[1]s (%.1[2]f %[3]sm / %.1[4]f%[5]sm) = %.1[6]f %[7]sΩ\n",

	{ModeDiagram, CharsetASCII}: "" +
		"              %.1[4]f %[5]sm\n" +
		"        <----------------->\n" +
		"        +------------------+\n" +
		"        |       ^          |\n" +
		"    %[1]s  |       | %5.1[2]f %[3]sm | = %.1[6]f %[7]sOhm\n" +
		"        |       v          |\n" +
		"        +------------------+\n",

	{ModeDiagram, CharsetUnicode}: "" +
		"              %.1[4]f %[5]sm\n" +
		"        ⮜─────────────────⮞\n" +
		"        ┌──────────────────┐\n" +
		"        │       ⮝          │\n" +
		"    %[1]s  │       │ %5.1[2]f %[3]sm │ = %.1[6]f %[7]sΩ\n" +
		"        │       ⮟          │\n" +
		"        └──────────────────┘\n",
}

// Via template arguments:
//
//	[1] name  [2] x count  [3] y count  [4] resistance  [5] resistance prefix
var viaTemplates = map[Style]string{
	{ModeLine, CharsetASCII}:   "%[1]s (%[2]d x %[3]d) = %.1[4]f %[5]sOhm\n",
	{ModeLine, CharsetUnicode}: "%[1]s (%[2]d x %[3]d) = %.1[4]f %[5]sΩ\n",

	{ModeDiagram, CharsetASCII}: "" +
		"             x %[2]d\n" +
		"         +--+  +--+\n" +
		"         |  |  |  |\n" +
		"         +--+  +--+ \n" +
		"    x %[3]d               = %.1[4]f %[5]sOhm\n" +
		"         +--+  +--+\n" +
		"         |  |  |  |\n" +
		"         +--+  +--+\n",

	{ModeDiagram, CharsetUnicode}: "" +
		"             x %[2]d\n" +
		"         ┌──┐  ┌──┐\n" +
		"         │  │  │  │\n" +
		"         └──┘  └──┘ \n" +
		"    x %[3]d               = %.1[4]f %[5]sΩ\n" +
		"         ┌──┐  ┌──┐\n" +
		"         │  │  │  │\n" +
		"         └──┘  └──┘\n",
}
