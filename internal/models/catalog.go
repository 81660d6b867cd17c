package models

import "encoding/json"

// Grade описывает верхний уровень каталога (класс) с вложенными предметами.
type Grade struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	Subjects []*Subject `json:"subjects"`
	Extra    Extra      `json:"-"`
}

// Subject описывает предмет внутри класса.
type Subject struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	Image    string     `json:"image,omitempty"`
	Chapters []*Chapter `json:"chapters"`
	Extra    Extra      `json:"-"`
}

// Chapter описывает главу предмета.
type Chapter struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Units []*Unit `json:"units"`
	Extra Extra   `json:"-"`
}

// Unit описывает раздел главы.
type Unit struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	IsFree   bool       `json:"isFree"`
	SubUnits []*SubUnit `json:"subUnits,omitempty"`
	Extra    Extra      `json:"-"`
}

// SubUnit описывает конечный учебный материал.
type SubUnit struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Content  string `json:"content,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
	Extra    Extra  `json:"-"`
}

func (g Grade) MarshalJSON() ([]byte, error) {
	type plain Grade
	return marshalWithExtra(plain(g), g.Extra)
}

func (g *Grade) UnmarshalJSON(data []byte) error {
	type plain Grade
	if err := json.Unmarshal(data, (*plain)(g)); err != nil {
		return err
	}
	extra, err := extraFields(data, "_id", "name", "subjects")
	g.Extra = extra
	return err
}

func (s Subject) MarshalJSON() ([]byte, error) {
	type plain Subject
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *Subject) UnmarshalJSON(data []byte) error {
	type plain Subject
	if err := json.Unmarshal(data, (*plain)(s)); err != nil {
		return err
	}
	extra, err := extraFields(data, "_id", "name", "image", "chapters")
	s.Extra = extra
	return err
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	type plain Chapter
	return marshalWithExtra(plain(c), c.Extra)
}

func (c *Chapter) UnmarshalJSON(data []byte) error {
	type plain Chapter
	if err := json.Unmarshal(data, (*plain)(c)); err != nil {
		return err
	}
	extra, err := extraFields(data, "_id", "name", "units")
	c.Extra = extra
	return err
}

func (u Unit) MarshalJSON() ([]byte, error) {
	type plain Unit
	return marshalWithExtra(plain(u), u.Extra)
}

func (u *Unit) UnmarshalJSON(data []byte) error {
	type plain Unit
	if err := json.Unmarshal(data, (*plain)(u)); err != nil {
		return err
	}
	extra, err := extraFields(data, "_id", "name", "isFree", "subUnits")
	u.Extra = extra
	return err
}

func (s SubUnit) MarshalJSON() ([]byte, error) {
	type plain SubUnit
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *SubUnit) UnmarshalJSON(data []byte) error {
	type plain SubUnit
	if err := json.Unmarshal(data, (*plain)(s)); err != nil {
		return err
	}
	extra, err := extraFields(data, "_id", "name", "content", "videoUrl")
	s.Extra = extra
	return err
}
