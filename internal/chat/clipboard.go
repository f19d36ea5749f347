package chat

import "github.com/atotto/clipboard"

var defaultWriteClipboard = clipboard.WriteAll

// writeClipboard is replaced in tests.
var writeClipboard = defaultWriteClipboard
