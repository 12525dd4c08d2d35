package cmddef

// AutocmdEvents is the fixed, case-insensitive event-name table validated
// against by the :autocmd parser (spec §9's supplement). Grounded on
// original_source/src/nvim/auevents.c's event_names table, trimmed to a
// fixed subset of its names (the terminal events are among those kept).
var AutocmdEvents = []string{
	"BufNewFile", "BufReadPre", "BufRead", "BufReadPost", "BufReadCmd",
	"FileReadPre", "FileReadPost", "FileReadCmd",
	"BufWritePre", "BufWrite", "BufWritePost", "BufWriteCmd",
	"FileWritePre", "FileWritePost", "FileWriteCmd",
	"FileAppendPre", "FileAppendPost", "FileAppendCmd",
	"FilterReadPre", "FilterReadPost", "FilterWritePre", "FilterWritePost",
	"BufAdd", "BufDelete", "BufEnter", "BufLeave", "BufFilePre", "BufFilePost",
	"BufNew", "BufUnload", "BufHidden", "BufWinEnter", "BufWinLeave",
	"BufWipeout",
	"CmdlineChanged", "CmdlineEnter", "CmdlineLeave",
	"CmdUndefined", "CmdwinEnter", "CmdwinLeave",
	"ColorScheme", "ColorSchemePre",
	"CompleteDone", "CompleteDonePre",
	"DiffUpdated", "DirChanged",
	"ExitPre", "FileAppendPre", "FileChangedShell", "FileChangedShellPost",
	"FileChangedRO", "FileType", "FocusGained", "FocusLost",
	"FuncUndefined", "UIEnter", "UILeave",
	"InsertChange", "InsertEnter", "InsertLeavePre", "InsertLeave",
	"InsertCharPre", "MenuPopup", "ModeChanged",
	"OptionSet", "QuickFixCmdPre", "QuickFixCmdPost", "QuitPre",
	"RemoteReply", "SessionLoadPost",
	"ShellCmdPost", "ShellFilterPost", "SourcePre", "SourcePost", "SourceCmd",
	"SpellFileMissing", "StdinReadPre", "StdinReadPost",
	"SwapExists", "Syntax", "TabEnter", "TabLeave", "TabNew", "TabNewEntered",
	"TabClosed", "TermOpen", "TermEnter", "TermLeave", "TermClose", "TermResponse",
	"TextChanged", "TextChangedI", "TextChangedP", "TextYankPost",
	"User", "UserGettingBored",
	"VimEnter", "VimLeave", "VimLeavePre", "VimResized", "VimResume", "VimSuspend",
	"WinClosed", "WinEnter", "WinLeave", "WinNew", "WinScrolled",
}
