/*
Package config loads glyphgroups settings from the environment and custom
group definitions from YAML files.

Environment:

	GLYPHGROUPS_FILE       optional group definition file
	GLYPHGROUPS_LOG_LEVEL  debug | info | warn | error (default warn)
	GLYPHGROUPS_DOTENV     dotenv file read before the environment (default .env)

Group definition file:

	groups:
	  - name: runic              # custom group
	    ranges: ["U+16A0-U+16F0", "0x2600-0x2603"]
	    codepoints: [9731]
	  - category: smile          # replaces the built-in Smile group
	    ranges: ["128512-128520"]

Ranges are expanded in order and followed by the literal codepoints. Later
entries for the same key replace earlier ones, the same way Registry.Add does.
*/
package config
