package utils

import "fmt"

// MoveImage returns a copy of images with the element at from moved to to.
// The elements in between shift by one, as in a drag-and-drop list.
func MoveImage(images []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(images) {
		return nil, fmt.Errorf("from index %d out of range [0, %d)", from, len(images))
	}
	if to < 0 || to >= len(images) {
		return nil, fmt.Errorf("to index %d out of range [0, %d)", to, len(images))
	}

	moved := make([]string, 0, len(images))
	moved = append(moved, images[:from]...)
	moved = append(moved, images[from+1:]...)

	result := make([]string, 0, len(images))
	result = append(result, moved[:to]...)
	result = append(result, images[from])
	result = append(result, moved[to:]...)
	return result, nil
}
