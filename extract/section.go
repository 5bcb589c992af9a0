package extract

// Section 以标题文本为 key 的一段正文
type Section struct {
	Label   string
	Content string
}

// Sections 保持出现顺序；重复标题沿用第一次的位置，内容取最后一次
type Sections []Section

func (s Sections) Get(label string) string {
	for _, sec := range s {
		if sec.Label == label {
			return sec.Content
		}
	}
	return ""
}

func (s Sections) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, sec := range s {
		m[sec.Label] = sec.Content
	}
	return m
}

func (s *Sections) set(label, content string) {
	for i := range *s {
		if (*s)[i].Label == label {
			(*s)[i].Content = content
			return
		}
	}
	*s = append(*s, Section{Label: label, Content: content})
}
