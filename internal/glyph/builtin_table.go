package glyph

// registerBuiltinFont populates the built-in 6x12 bitmap font. Each
// entry is twelve 6-character rows, '#' for foreground, ' ' for
// background. Coverage: space, digits, uppercase letters (lowercase
// letters alias their uppercase glyph), and a small punctuation set;
// characters outside this set render blank.
func registerBuiltinFont() {
	builtin[' '] = rowsFromStrings([12]string{
		"      ", "      ", "      ", "      ", "      ", "      ",
		"      ", "      ", "      ", "      ", "      ", "      ",
	})

	builtin['0'] = rowsFromStrings([12]string{
		" #### ", "#    #", "#   ##", "#  # #", "# #  #", "##   #",
		"#    #", "#    #", "#    #", "#    #", " #### ", "      ",
	})
	builtin['1'] = rowsFromStrings([12]string{
		"  #   ", " ##   ", "  #   ", "  #   ", "  #   ", "  #   ",
		"  #   ", "  #   ", "  #   ", "  #   ", " ###  ", "      ",
	})
	builtin['2'] = rowsFromStrings([12]string{
		" #### ", "#    #", "     #", "     #", "    # ", "   #  ",
		"  #   ", " #    ", "#     ", "#     ", "######", "      ",
	})
	builtin['3'] = rowsFromStrings([12]string{
		" #### ", "#    #", "     #", "     #", "  ### ", "     #",
		"     #", "     #", "#    #", "#    #", " #### ", "      ",
	})
	builtin['4'] = rowsFromStrings([12]string{
		"   #  ", "  ##  ", " # #  ", "#  #  ", "#  #  ", "######",
		"   #  ", "   #  ", "   #  ", "   #  ", "   #  ", "      ",
	})
	builtin['5'] = rowsFromStrings([12]string{
		"######", "#     ", "#     ", "#     ", "##### ", "    # ",
		"     #", "     #", "#    #", "#    #", " #### ", "      ",
	})
	builtin['6'] = rowsFromStrings([12]string{
		" #### ", "#    #", "#     ", "#     ", "##### ", "#    #",
		"#    #", "#    #", "#    #", "#    #", " #### ", "      ",
	})
	builtin['7'] = rowsFromStrings([12]string{
		"######", "     #", "    # ", "    # ", "   #  ", "   #  ",
		"  #   ", "  #   ", " #    ", " #    ", " #    ", "      ",
	})
	builtin['8'] = rowsFromStrings([12]string{
		" #### ", "#    #", "#    #", "#    #", " #### ", "#    #",
		"#    #", "#    #", "#    #", "#    #", " #### ", "      ",
	})
	builtin['9'] = rowsFromStrings([12]string{
		" #### ", "#    #", "#    #", "#    #", "#    #", " #####",
		"     #", "     #", "#    #", "#    #", " #### ", "      ",
	})

	alphabet := map[rune][12]string{
		'A': {" #### ", "#    #", "#    #", "#    #", "######", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "      "},
		'B': {"##### ", "#    #", "#    #", "#    #", "##### ", "#    #", "#    #", "#    #", "#    #", "#    #", "##### ", "      "},
		'C': {" #### ", "#    #", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "#    #", "#    #", " #### ", "      "},
		'D': {"##### ", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "##### ", "      "},
		'E': {"######", "#     ", "#     ", "#     ", "#####", "#     ", "#     ", "#     ", "#     ", "#     ", "######", "      "},
		'F': {"######", "#     ", "#     ", "#     ", "#####", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "      "},
		'G': {" #### ", "#    #", "#     ", "#     ", "#     ", "#  ###", "#    #", "#    #", "#    #", "#    #", " #### ", "      "},
		'H': {"#    #", "#    #", "#    #", "#    #", "######", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "      "},
		'I': {" ###  ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", " ###  ", "      "},
		'J': {"     #", "     #", "     #", "     #", "     #", "     #", "     #", "#    #", "#    #", "#    #", " #### ", "      "},
		'K': {"#    #", "#   # ", "#  #  ", "# #   ", "##    ", "##    ", "# #   ", "#  #  ", "#   # ", "#    #", "#    #", "      "},
		'L': {"#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "######", "      "},
		'M': {"#    #", "##  ##", "# ## #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "      "},
		'N': {"#    #", "##   #", "# #  #", "#  # #", "#   ##", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "      "},
		'O': {" #### ", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", " #### ", "      "},
		'P': {"##### ", "#    #", "#    #", "#    #", "##### ", "#     ", "#     ", "#     ", "#     ", "#     ", "#     ", "      "},
		'Q': {" #### ", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#  # #", "#   # ", "#    #", " ### #", "      "},
		'R': {"##### ", "#    #", "#    #", "#    #", "##### ", "#  #  ", "#   # ", "#    #", "#    #", "#    #", "#    #", "      "},
		'S': {" #### ", "#    #", "#     ", "#     ", " #### ", "     #", "     #", "     #", "#    #", "#    #", " #### ", "      "},
		'T': {"######", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "      "},
		'U': {"#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", " #### ", "      "},
		'V': {"#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", " #  # ", " #  # ", "  ##  ", "  ##  ", "      "},
		'W': {"#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "#    #", "# ## #", "##  ##", "#    #", "#    #", "      "},
		'X': {"#    #", "#    #", " #  # ", " #  # ", "  ##  ", "  ##  ", "  ##  ", " #  # ", " #  # ", "#    #", "#    #", "      "},
		'Y': {"#    #", "#    #", " #  # ", " #  # ", "  ##  ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "  #   ", "      "},
		'Z': {"######", "     #", "    # ", "   #  ", "  #   ", "  #   ", " #    ", "#     ", "#     ", "#     ", "######", "      "},
	}
	for ch, rows := range alphabet {
		builtin[ch] = rowsFromStrings(rows)
	}

	punctuation := map[rune][12]string{
		'.':  {"      ", "      ", "      ", "      ", "      ", "      ", "      ", "      ", "      ", "  ##  ", "  ##  ", "      "},
		',':  {"      ", "      ", "      ", "      ", "      ", "      ", "      ", "      ", "      ", "  ##  ", "  ##  ", "  #   "},
		'!':  {"  ##  ", "  ##  ", "  ##  ", "  ##  ", "  ##  ", "  ##  ", "  ##  ", "      ", "      ", "  ##  ", "  ##  ", "      "},
		'?':  {" #### ", "#    #", "     #", "    # ", "   #  ", "  #   ", "  #   ", "      ", "      ", "  #   ", "  #   ", "      "},
		'-':  {"      ", "      ", "      ", "      ", "      ", "######", "      ", "      ", "      ", "      ", "      ", "      "},
		'\'': {"  #   ", "  #   ", " #    ", "      ", "      ", "      ", "      ", "      ", "      ", "      ", "      ", "      "},
		':':  {"      ", "      ", "  ##  ", "  ##  ", "      ", "      ", "      ", "  ##  ", "  ##  ", "      ", "      ", "      "},
	}
	for ch, rows := range punctuation {
		builtin[ch] = rowsFromStrings(rows)
	}

	for ch, g := range builtin {
		if ch >= 'A' && ch <= 'Z' {
			builtin[ch+('a'-'A')] = g
		}
	}
}
