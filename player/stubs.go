package player

// Search and moderation are declared but not built yet. Each reports
// ErrNotImplemented so callers can tell "not built" from "found nothing".

func (p *Player) SearchVideos(term string) error {
	return p.reject(failure("search_videos", ErrNotImplemented, "search_videos needs implementation"))
}

func (p *Player) SearchVideosWithTag(tag string) error {
	return p.reject(failure("search_videos_tag", ErrNotImplemented, "search_videos_tag needs implementation"))
}

func (p *Player) FlagVideo(id, reason string) error {
	return p.reject(failure("flag_video", ErrNotImplemented, "flag_video needs implementation"))
}

func (p *Player) AllowVideo(id string) error {
	return p.reject(failure("allow_video", ErrNotImplemented, "allow_video needs implementation"))
}
