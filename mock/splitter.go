package mock

import "kbase"

var _ kbase.SectionSplitter = (*SectionSplitter)(nil)

// SectionSplitter is a mock implementation of kbase.SectionSplitter.
type SectionSplitter struct {
	SplitFn func(text string) ([]kbase.Section, error)
}

func (s *SectionSplitter) Split(text string) ([]kbase.Section, error) {
	return s.SplitFn(text)
}

var _ kbase.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of kbase.SeenFilter.
type SeenFilter struct {
	AddFn  func(key string)
	TestFn func(key string) bool
}

func (f *SeenFilter) Add(key string) {
	f.AddFn(key)
}

func (f *SeenFilter) Test(key string) bool {
	return f.TestFn(key)
}
