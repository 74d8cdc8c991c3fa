// Package plugin runs the Lua startup script.
//
// The script runs once, before the completion table is frozen, in a
// sandboxed gopher-lua state with only the base, table, string and math
// libraries. It sees a single global module:
//
//	texted.word("zymurgy")          -- add a dictionary word, returns accepted
//	texted.words({"foo", "bar"})    -- add several, returns the accepted count
//	texted.complete("gr", "great")  -- add or replace a completion entry
//	texted.log("loaded %d", n)      -- write to the diagnostic log
//	texted.version                  -- program version string
package plugin
