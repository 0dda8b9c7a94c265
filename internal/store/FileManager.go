package store

import (
	"os"

	json "github.com/goccy/go-json"
	"likability/internal/providers"
	"likability/internal/store/interfaces"
)

// FileManager reads and writes whole documents. Writes go through a temp
// file, sync and rename so a crash never leaves a half-written document.
type FileManager struct {
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		logger:     logger,
	}
}

func (f *FileManager) Save(doc any, fileName string) error {
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// Load unmarshals the document into doc. A missing file is not an error and
// leaves doc untouched.
func (f *FileManager) Load(fileName string, doc any) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	return json.Unmarshal(decompressed, doc)
}
