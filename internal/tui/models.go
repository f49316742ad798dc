package tui

type View int

const (
	ViewHome View = iota
	ViewResults
	ViewDetail
	ViewChat
	ViewFinder
	ViewSources
)

// ResultTab selects which result stream the results view shows.
type ResultTab int

const (
	TabVideos ResultTab = iota
	TabWeb
	TabNews
)

func (t ResultTab) String() string {
	switch t {
	case TabVideos:
		return "videos"
	case TabWeb:
		return "web"
	case TabNews:
		return "news"
	default:
		return "unknown"
	}
}
