package editor

import "github.com/classday/probank/internal/bank"

// fileLoadedMsg is sent when an import file has been read and validated.
type fileLoadedMsg struct {
	Records []bank.ProblemRecord
	Path    string
	Err     error
}

// fileSavedMsg is sent when an export has been written to disk.
type fileSavedMsg struct {
	Path string
	Err  error
}
