// Command locpackctl converts game localization packs between the LocPack
// text form and the LocPackBin binary form.
package main

func main() {
	execute()
}
