package writer

// semicolonOmittingWriter drops a statement-terminating semicolon when it is
// the last thing on its line. Anything else written on the same line first
// commits the pending semicolon.
type semicolonOmittingWriter struct {
	Writer
	pending bool
}

func NewTrailingSemicolonOmittingWriter(w Writer) Writer {
	return &semicolonOmittingWriter{Writer: w}
}

func (w *semicolonOmittingWriter) commit() {
	if w.pending {
		w.Writer.WriteTrailingSemicolon(";")
		w.pending = false
	}
}

func (w *semicolonOmittingWriter) WriteTrailingSemicolon(string) {
	w.pending = true
}

func (w *semicolonOmittingWriter) WriteLine() {
	w.pending = false
	w.Writer.WriteLine()
}

func (w *semicolonOmittingWriter) Write(s string)              { w.commit(); w.Writer.Write(s) }
func (w *semicolonOmittingWriter) WriteKeyword(s string)       { w.commit(); w.Writer.WriteKeyword(s) }
func (w *semicolonOmittingWriter) WriteOperator(s string)      { w.commit(); w.Writer.WriteOperator(s) }
func (w *semicolonOmittingWriter) WritePunctuation(s string)   { w.commit(); w.Writer.WritePunctuation(s) }
func (w *semicolonOmittingWriter) WriteSpace(s string)         { w.commit(); w.Writer.WriteSpace(s) }
func (w *semicolonOmittingWriter) WriteStringLiteral(s string) { w.commit(); w.Writer.WriteStringLiteral(s) }
func (w *semicolonOmittingWriter) WriteLiteral(s string)       { w.commit(); w.Writer.WriteLiteral(s) }
func (w *semicolonOmittingWriter) WriteParameter(s string)     { w.commit(); w.Writer.WriteParameter(s) }
func (w *semicolonOmittingWriter) WriteProperty(s string)      { w.commit(); w.Writer.WriteProperty(s) }
func (w *semicolonOmittingWriter) WriteSymbol(s string)        { w.commit(); w.Writer.WriteSymbol(s) }
func (w *semicolonOmittingWriter) WriteComment(s string)       { w.commit(); w.Writer.WriteComment(s) }
func (w *semicolonOmittingWriter) RawWrite(s string)           { w.commit(); w.Writer.RawWrite(s) }
func (w *semicolonOmittingWriter) IncreaseIndent()             { w.commit(); w.Writer.IncreaseIndent() }
func (w *semicolonOmittingWriter) DecreaseIndent()             { w.commit(); w.Writer.DecreaseIndent() }
func (w *semicolonOmittingWriter) SuppressIndent()             { w.commit(); w.Writer.SuppressIndent() }

func (w *semicolonOmittingWriter) Clear() {
	w.pending = false
	w.Writer.Clear()
}
