package lexicon

// Grammar structs for the participle parser. These define a small DSL for
// declaring named closed word classes:
//
//	class weekday {
//	    "monday" "tuesday" "wednesday" "thursday" "friday" "saturday" "sunday"
//	}
//	class scale_word {
//	    "dozen" "hundred" "thousand" "million"
//	}

// File is a sequence of class declarations.
type File struct {
	Decls []*ClassDecl `parser:"@@*"`
}

// ClassDecl names a closed word class and lists its members.
type ClassDecl struct {
	Name  string   `parser:"'class' @Ident '{'"`
	Words []string `parser:"@String* '}'"`
}
