// Command forgectl roda o pipeline de análise de CSV sem servidor e aplica
// as migrações do banco.
package main

func main() {
	Execute()
}
