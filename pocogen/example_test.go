package pocogen_test

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/CognitoIQ/xsd2poco/pocogen"
)

func ExampleConfig_GenCLI() {
	var cfg pocogen.Config
	cfg.Option(pocogen.DefaultOptions...)
	cfg.Option(
		pocogen.LogOutput(log.New(os.Stderr, "", 0)),
		pocogen.LogLevel(1))
	if err := cfg.GenCLI("-d", "schemas", "-n", "Acme.Contracts"); err != nil {
		log.Fatal(err)
	}
}

func ExampleConfig_GenSource() {
	doc := `
		<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
		  <xs:element name="Book">
		    <xs:annotation>
		      <xs:documentation>A published work</xs:documentation>
		    </xs:annotation>
		    <xs:complexType>
		      <xs:sequence>
		        <xs:element name="Title" type="xs:string"/>
		        <xs:element name="page-count" type="xs:unsignedShort"/>
		        <xs:element name="Author" maxOccurs="unbounded">
		          <xs:complexType>
		            <xs:sequence>
		              <xs:element name="Name" type="xs:string"/>
		            </xs:sequence>
		          </xs:complexType>
		        </xs:element>
		      </xs:sequence>
		      <xs:attribute name="isbn" type="xs:string"/>
		    </xs:complexType>
		  </xs:element>
		</xs:schema>
	`
	var cfg pocogen.Config
	cfg.Option(pocogen.Namespace("Library"))

	out, err := cfg.GenSource("books.xsd", strings.NewReader(doc))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", out)

	// Output: using System.Collections.Generic;
	// using System.Xml.Serialization;
	// namespace Library.books;
	//
	// /// <summary>A published work</summary>
	// public partial class Book {
	//
	// 	public string Title {get;set;}
	//
	// 	[XmlElement("page-count")]
	// 	public ushort pagecount {get;set;}
	//
	// 	[XmlElement("Author")]
	// 	public List<Author> Authors {get;set;} = new();
	// }
	//
	// public partial class Author {
	//
	// 	public string Name {get;set;}
	// }
}
