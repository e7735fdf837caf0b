package service

// StorageServiceInterface defines the contract for storing uploaded files
type StorageServiceInterface interface {
	SaveImage(data []byte) (string, error)
	SaveFile(data []byte, originalName string) (string, error)
	Remove(urlPaths ...string)
}
