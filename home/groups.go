package home

// DefaultPattern is the repeating group-size pattern of the home page.
var DefaultPattern = []int{1, 1, 2, 1, 1, 2, 2, 1, 1}

// GenerateLayoutGroups partitions items with DefaultPattern.
func GenerateLayoutGroups(items []HomeItem) []LayoutGroup {
	return GenerateLayoutGroupsWithPattern(items, DefaultPattern)
}

// GenerateLayoutGroupsWithPattern partitions items into consecutive groups whose
// sizes cycle through pattern. The last group is clipped to the items left.
// An empty or non-positive pattern falls back to DefaultPattern.
func GenerateLayoutGroupsWithPattern(items []HomeItem, pattern []int) []LayoutGroup {
	if !validPattern(pattern) {
		pattern = DefaultPattern
	}

	var groups []LayoutGroup
	for i, k := 0, 0; i < len(items); k++ {
		size := pattern[k%len(pattern)]
		end := min(i+size, len(items))

		group := make(LayoutGroup, end-i)
		copy(group, items[i:end])
		groups = append(groups, group)

		i += size
	}
	return groups
}

func validPattern(pattern []int) bool {
	if len(pattern) == 0 {
		return false
	}
	for _, size := range pattern {
		if size < 1 {
			return false
		}
	}
	return true
}
